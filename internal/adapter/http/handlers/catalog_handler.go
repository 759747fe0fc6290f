package handlers

import (
	"errors"
	"net/http"

	"shiv_accounts/internal/adapter/http/dto/request"
	"shiv_accounts/internal/adapter/http/dto/response"
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/infrastructure/metrics"
	"shiv_accounts/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler serves the list/search/create/edit/delete endpoints of a
// master resource. R is the request body type; Res is the response body.
type CatalogHandler[T entities.Entity[T], R entities.Patch[T], Res any] struct {
	usecase    usecase.ICatalogUseCase[T]
	toResponse func(T) Res
	narrow     func(c *gin.Context, records []T) ([]T, error)
	metrics    *metrics.EntityMetrics
	log        *logrus.Entry
}

func NewCatalogHandler[T entities.Entity[T], R entities.Patch[T], Res any](entity string, uc usecase.ICatalogUseCase[T], toResponse func(T) Res) *CatalogHandler[T, R, Res] {
	return &CatalogHandler[T, R, Res]{
		usecase:    uc,
		toResponse: toResponse,
		metrics:    metrics.NewEntityMetrics(entity),
		log:        logrus.WithFields(logrus.Fields{"component": "handler", "entity": entity}),
	}
}

type (
	ContactHandler = CatalogHandler[entities.Contact, request.ContactRequest, response.ContactResponse]
	ProductHandler = CatalogHandler[entities.Product, request.ProductRequest, response.ProductResponse]
	TaxHandler     = CatalogHandler[entities.Tax, request.TaxRequest, response.TaxResponse]
	AccountHandler = CatalogHandler[entities.Account, request.AccountRequest, response.AccountResponse]
)

// NewContactHandler also accepts kind=customer|vendor on the list endpoint.
// Contacts of kind Both are returned for either.
func NewContactHandler(uc usecase.ICatalogUseCase[entities.Contact]) *ContactHandler {
	h := NewCatalogHandler[entities.Contact, request.ContactRequest]("contact", uc, response.FromContact)
	h.narrow = func(c *gin.Context, contacts []entities.Contact) ([]entities.Contact, error) {
		return usecase.FilterContactsByRole(contacts, c.Query("kind"))
	}
	return h
}

func NewProductHandler(uc usecase.ICatalogUseCase[entities.Product]) *ProductHandler {
	return NewCatalogHandler[entities.Product, request.ProductRequest]("product", uc, response.FromProduct)
}

func NewTaxHandler(uc usecase.ICatalogUseCase[entities.Tax]) *TaxHandler {
	return NewCatalogHandler[entities.Tax, request.TaxRequest]("tax", uc, response.FromTax)
}

func NewAccountHandler(uc usecase.ICatalogUseCase[entities.Account]) *AccountHandler {
	return NewCatalogHandler[entities.Account, request.AccountRequest]("account", uc, response.FromAccount)
}

// List returns the records matching the optional q search term.
func (h *CatalogHandler[T, R, Res]) List(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if h.narrow != nil {
		if records, err = h.narrow(c, records); err != nil {
			writeError(c, h.log, err)
			return
		}
	}
	c.JSON(http.StatusOK, response.List(records, h.toResponse))
}

func (h *CatalogHandler[T, R, Res]) Get(c *gin.Context) {
	record, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(record))
}

func (h *CatalogHandler[T, R, Res]) Create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidPayload(c, h.log, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req)
	if err != nil {
		h.recordFailure(err)
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordMutation("create")
	c.JSON(http.StatusCreated, h.toResponse(created))
}

// Update merges the body onto the stored record; absent fields are kept.
func (h *CatalogHandler[T, R, Res]) Update(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidPayload(c, h.log, err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.recordFailure(err)
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordMutation("update")
	c.JSON(http.StatusOK, h.toResponse(updated))
}

func (h *CatalogHandler[T, R, Res]) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordMutation("delete")
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler[T, R, Res]) recordFailure(err error) {
	if errors.Is(err, entities.ErrValidation) {
		h.metrics.RecordValidationFailure()
	}
}
