package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"shiv_accounts/internal/adapter/http/handlers/mocks"
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func purchaseOrderRouter(h *PurchaseOrderHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/transactions/purchase-orders")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/items", h.AddLineItem)
	g.PUT("/:id/items/:itemId", h.UpdateLineItem)
	g.DELETE("/:id/items/:itemId", h.RemoveLineItem)
	g.PATCH("/:id/send", h.Send)
	g.PATCH("/:id/approve", h.Approve)
	g.PATCH("/:id/complete", h.Complete)
	g.PATCH("/:id/cancel", h.Cancel)
	return r
}

func sampleView(status entities.PurchaseOrderStatus) entities.PurchaseOrderView {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	po := entities.PurchaseOrder{
		Record:   entities.Record{ID: "po-1"},
		PONumber: "PO-001",
		VendorID: "vendor-1",
		Date:     day,
		DueDate:  day.AddDate(0, 0, 15),
		Items: []entities.LineItem{{
			ID: "li-1", ProductID: "prod-table",
			Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10000), TaxPercentage: decimal.NewFromInt(18),
		}},
		Status: status,
	}
	return entities.PurchaseOrderView{
		Order:        po.Normalize(),
		VendorName:   "Wood Suppliers Inc",
		ProductNames: map[string]string{"prod-table": "Office Table"},
	}
}

func TestPurchaseOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
	r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

	draft, sent := sampleView(entities.PurchaseOrderStatusDraft), sampleView(entities.PurchaseOrderStatusSent)
	sent.Order.ID = "po-2"
	uc.EXPECT().List(gomock.Any(), "wood").Return([]entities.PurchaseOrderView{draft, sent}, nil)

	w := serve(r, http.MethodGet, "/v1/transactions/purchase-orders?q=wood&status=sent", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "po-2" || body[0]["vendorName"] != "Wood Suppliers Inc" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPurchaseOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		w := serve(r, http.MethodPost, "/v1/transactions/purchase-orders", `{"vendorId":"vendor-1","date":"15/01/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns joined order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, patch entities.Patch[entities.PurchaseOrder]) (entities.PurchaseOrderView, error) {
				po := patch.ApplyTo(entities.PurchaseOrder{})
				if po.VendorID != "vendor-1" || len(po.Items) != 1 || !po.Items[0].Quantity.Equal(decimal.NewFromInt(5)) {
					t.Fatalf("unexpected draft: %+v", po)
				}
				return sampleView(entities.PurchaseOrderStatusDraft), nil
			},
		)

		body := `{"vendorId":"vendor-1","date":"2024-01-15","dueDate":"2024-01-30","items":[{"productId":"prod-table","quantity":5,"unitPrice":10000,"taxPercentage":18}]}`
		w := serve(r, http.MethodPost, "/v1/transactions/purchase-orders", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["total"] != "59000" || res["status"] != "Draft" || res["date"] != "2024-01-15" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPurchaseOrderHandler_StatusActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		path   string
		expect func(uc *mocks.MockIPurchaseOrderUseCase) *gomock.Call
	}{
		{"send", func(uc *mocks.MockIPurchaseOrderUseCase) *gomock.Call { return uc.EXPECT().Send(gomock.Any(), "po-1") }},
		{"approve", func(uc *mocks.MockIPurchaseOrderUseCase) *gomock.Call {
			return uc.EXPECT().Approve(gomock.Any(), "po-1")
		}},
		{"complete", func(uc *mocks.MockIPurchaseOrderUseCase) *gomock.Call {
			return uc.EXPECT().Complete(gomock.Any(), "po-1")
		}},
		{"cancel", func(uc *mocks.MockIPurchaseOrderUseCase) *gomock.Call {
			return uc.EXPECT().Cancel(gomock.Any(), "po-1")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
			r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

			tc.expect(uc).Return(sampleView(entities.PurchaseOrderStatusSent), nil)

			w := serve(r, http.MethodPatch, fmt.Sprintf("/v1/transactions/purchase-orders/po-1/%s", tc.path), "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		})
	}

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		err := fmt.Errorf("%w: Draft -> Completed", entities.ErrInvalidStatusTransition)
		uc.EXPECT().Complete(gomock.Any(), "po-1").Return(entities.PurchaseOrderView{}, err)

		w := serve(r, http.MethodPatch, "/v1/transactions/purchase-orders/po-1/complete", "")
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPurchaseOrderHandler_LineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().AddLineItem(gomock.Any(), "po-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.Patch[entities.LineItem]) (entities.PurchaseOrderView, error) {
				li := patch.ApplyTo(entities.LineItem{})
				if li.ProductID != "prod-chair" || !li.UnitPrice.Equal(decimal.NewFromInt(3000)) {
					t.Fatalf("unexpected line item: %+v", li)
				}
				return sampleView(entities.PurchaseOrderStatusDraft), nil
			},
		)

		w := serve(r, http.MethodPost, "/v1/transactions/purchase-orders/po-1/items", `{"productId":"prod-chair","quantity":4,"unitPrice":3000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update locked order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().UpdateLineItem(gomock.Any(), "po-1", "li-1", gomock.Any()).
			Return(entities.PurchaseOrderView{}, fmt.Errorf("%w: status Completed", entities.ErrOrderLocked))

		w := serve(r, http.MethodPut, "/v1/transactions/purchase-orders/po-1/items/li-1", `{"quantity":2}`)
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "ORDER_LOCKED" {
			t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("remove unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().RemoveLineItem(gomock.Any(), "po-1", "li-9").Return(entities.PurchaseOrderView{}, usecase.ErrRecordNotFound)

		w := serve(r, http.MethodDelete, "/v1/transactions/purchase-orders/po-1/items/li-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPurchaseOrderHandler_GetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "po-1").Return(sampleView(entities.PurchaseOrderStatusDraft), nil)

		w := serve(r, http.MethodGet, "/v1/transactions/purchase-orders/po-1", "")
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		items, _ := res["items"].([]any)
		if w.Code != http.StatusOK || len(items) != 1 || items[0].(map[string]any)["productName"] != "Office Table" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "po-1", gomock.Any()).
			Return(entities.PurchaseOrderView{}, &entities.ValidationError{Fields: map[string]string{"items": "must contain at least one line item"}})

		w := serve(r, http.MethodPut, "/v1/transactions/purchase-orders/po-1", `{"items":[]}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Fields["items"] == "" {
			t.Fatalf("expected 400 with items field, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		r := purchaseOrderRouter(NewPurchaseOrderHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "po-1").Return(errors.New("db"))

		w := serve(r, http.MethodDelete, "/v1/transactions/purchase-orders/po-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
