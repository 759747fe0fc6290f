package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shiv_accounts/internal/adapter/http/dto/request"
	"shiv_accounts/internal/adapter/http/dto/response"
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/infrastructure/metrics"
	"shiv_accounts/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PurchaseOrderHandler handles HTTP requests for purchase orders, their line
// items and their status actions.
type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
	metrics *metrics.EntityMetrics
	log     *logrus.Entry
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		usecase: uc,
		metrics: metrics.NewEntityMetrics("purchase_order"),
		log:     logrus.WithFields(logrus.Fields{"component": "handler", "entity": "purchase_order"}),
	}
}

// List searches by PO number, vendor name or status (q) and optionally keeps a
// single status (status=Draft).
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		kept := views[:0]
		for _, v := range views {
			if strings.EqualFold(string(v.Order.Status), status) {
				kept = append(kept, v)
			}
		}
		views = kept
	}
	c.JSON(http.StatusOK, response.List(views, response.FromPurchaseOrderView))
}

func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrderView(view))
}

func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req request.PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidPayload(c, h.log, err)
		return
	}
	h.respond(c, http.StatusCreated, "create")(h.usecase.Create(c.Request.Context(), req))
}

func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	var req request.PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidPayload(c, h.log, err)
		return
	}
	h.respond(c, http.StatusOK, "update")(h.usecase.Update(c.Request.Context(), c.Param("id"), req))
}

func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordMutation("delete")
	c.Status(http.StatusNoContent)
}

func (h *PurchaseOrderHandler) AddLineItem(c *gin.Context) {
	var req request.LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidPayload(c, h.log, err)
		return
	}
	h.respond(c, http.StatusCreated, "add_line_item")(h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), req))
}

func (h *PurchaseOrderHandler) UpdateLineItem(c *gin.Context) {
	var req request.LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidPayload(c, h.log, err)
		return
	}
	h.respond(c, http.StatusOK, "update_line_item")(h.usecase.UpdateLineItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), req))
}

func (h *PurchaseOrderHandler) RemoveLineItem(c *gin.Context) {
	h.respond(c, http.StatusOK, "remove_line_item")(h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("itemId")))
}

func (h *PurchaseOrderHandler) Send(c *gin.Context) {
	h.changeStatus(c, "send", h.usecase.Send)
}

func (h *PurchaseOrderHandler) Approve(c *gin.Context) {
	h.changeStatus(c, "approve", h.usecase.Approve)
}

func (h *PurchaseOrderHandler) Complete(c *gin.Context) {
	h.changeStatus(c, "complete", h.usecase.Complete)
}

func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, "cancel", h.usecase.Cancel)
}

func (h *PurchaseOrderHandler) changeStatus(
	c *gin.Context,
	op string,
	action func(ctx context.Context, id string) (entities.PurchaseOrderView, error),
) {
	h.respond(c, http.StatusOK, op)(action(c.Request.Context(), c.Param("id")))
}

// respond writes the joined order or the mapped error of a write operation.
func (h *PurchaseOrderHandler) respond(c *gin.Context, status int, op string) func(entities.PurchaseOrderView, error) {
	return func(view entities.PurchaseOrderView, err error) {
		if err != nil {
			if errors.Is(err, entities.ErrValidation) {
				h.metrics.RecordValidationFailure()
			}
			writeError(c, h.log, err)
			return
		}
		h.metrics.RecordMutation(op)
		h.log.WithFields(logrus.Fields{"id": view.Order.ID, "op": op, "status": view.Order.Status}).Debug("purchase order written")
		c.JSON(status, response.FromPurchaseOrderView(view))
	}
}
