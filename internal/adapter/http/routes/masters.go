package routes

import (
	"shiv_accounts/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMasters  = "/masters"
	PathContacts = "/contacts"
	PathProducts = "/products"
	PathTaxes    = "/taxes"
	PathAccounts = "/accounts"
)

// crudHandler is the shape shared by every master resource handler.
type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func addMasterRoutes(rg *gin.RouterGroup, contacts *handlers.ContactHandler, products *handlers.ProductHandler, taxes *handlers.TaxHandler, accounts *handlers.AccountHandler) {
	masters := rg.Group(PathMasters)
	addCRUD(masters.Group(PathContacts), contacts)
	addCRUD(masters.Group(PathProducts), products)
	addCRUD(masters.Group(PathTaxes), taxes)
	addCRUD(masters.Group(PathAccounts), accounts)
}

func addCRUD(g *gin.RouterGroup, h crudHandler) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
