package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/pkg/config"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

type testEnv struct {
	source  *catalog.Catalog
	manager *session.Manager
	sess    *session.Session
	metrics *metrics.StoreMetrics
}

func newTestEnv(t *testing.T, seedDemo bool) *testEnv {
	t.Helper()
	source, err := catalog.Default()
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	manager, err := session.NewManager(session.ManagerParams{
		Catalog: source,
		Config:  config.SessionConfig{IdleTTL: 0, SweepInterval: 0},
	})
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}
	return &testEnv{
		source:  source,
		manager: manager,
		sess:    manager.Create(seedDemo),
		metrics: metrics.NewStoreMetrics(nil),
	}
}

func (e *testEnv) request(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithSession(req.Context(), e.sess))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeCartResponse(t *testing.T, resp *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCartAddItemSuccess(t *testing.T) {
	env := newTestEnv(t, false)
	handler := CartAddItem(env.source, env.metrics, nil)

	req := env.request(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"1","quantity":2,"selected_size":"Medium","selected_color":"White"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	data := decodeCartResponse(t, resp)
	if !data.Applied {
		t.Fatal("expected applied true")
	}
	if len(data.Cart.Items) != 1 {
		t.Fatalf("expected 1 line got %d", len(data.Cart.Items))
	}
	if data.Cart.Items[0].ID != "1-Medium-White" {
		t.Fatalf("unexpected line id %q", data.Cart.Items[0].ID)
	}
	if !data.Cart.Total.Equal(decimal.NewFromInt(178)) {
		t.Fatalf("unexpected total %s", data.Cart.Total)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	env := newTestEnv(t, false)
	handler := CartAddItem(env.source, env.metrics, nil)

	req := env.request(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"999","quantity":1,"selected_size":"Medium","selected_color":"White"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t, false)
	handler := CartAddItem(env.source, env.metrics, nil)

	req := env.request(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"1","quantity":0,"selected_size":"Medium","selected_color":"White"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	env := newTestEnv(t, false)
	env.sess.Dispatch(func(st *session.State) bool {
		p, _ := env.source.FindByID("1")
		return st.Cart.AddItem(p, 2, "Medium", "White")
	})

	handler := CartUpdateItem(env.metrics, nil)
	req := env.request(http.MethodPatch, "/api/v1/cart/items/1-Medium-White", `{"quantity":0}`)
	req = withURLParam(req, "lineId", "1-Medium-White")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	data := decodeCartResponse(t, resp)
	if !data.Applied {
		t.Fatal("expected applied true")
	}
	if len(data.Cart.Items) != 0 {
		t.Fatalf("expected line removed got %d lines", len(data.Cart.Items))
	}
}

func TestCartUpdateItemSetsQuantity(t *testing.T) {
	env := newTestEnv(t, false)
	env.sess.Dispatch(func(st *session.State) bool {
		p, _ := env.source.FindByID("1")
		return st.Cart.AddItem(p, 2, "Medium", "White")
	})

	handler := CartUpdateItem(env.metrics, nil)
	req := env.request(http.MethodPatch, "/api/v1/cart/items/1-Medium-White", `{"quantity":5}`)
	req = withURLParam(req, "lineId", "1-Medium-White")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	data := decodeCartResponse(t, resp)
	if data.Cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5 got %d", data.Cart.Items[0].Quantity)
	}
	if data.Cart.ItemCount != 5 {
		t.Fatalf("expected item count 5 got %d", data.Cart.ItemCount)
	}
}

func TestCartRemoveItemMissingLineIsAppliedFalse(t *testing.T) {
	env := newTestEnv(t, false)
	handler := CartRemoveItem(env.metrics, nil)

	req := env.request(http.MethodDelete, "/api/v1/cart/items/ghost", "")
	req = withURLParam(req, "lineId", "ghost")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	data := decodeCartResponse(t, resp)
	if data.Applied {
		t.Fatal("expected applied false for missing line")
	}
}

func TestCartToggleAndSetOpen(t *testing.T) {
	env := newTestEnv(t, false)

	toggle := CartToggle(env.metrics, nil)
	resp := httptest.NewRecorder()
	toggle.ServeHTTP(resp, env.request(http.MethodPost, "/api/v1/cart/toggle", ""))
	if data := decodeCartResponse(t, resp); !data.Cart.IsOpen {
		t.Fatal("expected cart open after toggle")
	}

	setOpen := CartSetOpen(env.metrics, nil)
	resp = httptest.NewRecorder()
	setOpen.ServeHTTP(resp, env.request(http.MethodPut, "/api/v1/cart/open", `{"open":false}`))
	if data := decodeCartResponse(t, resp); data.Cart.IsOpen {
		t.Fatal("expected cart closed after set open false")
	}
}

func TestCartClear(t *testing.T) {
	env := newTestEnv(t, false)
	env.sess.Dispatch(func(st *session.State) bool {
		p, _ := env.source.FindByID("1")
		return st.Cart.AddItem(p, 1, "Medium", "White")
	})

	handler := CartClear(env.metrics, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, env.request(http.MethodDelete, "/api/v1/cart", ""))

	data := decodeCartResponse(t, resp)
	if len(data.Cart.Items) != 0 || data.Cart.ItemCount != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestCartGetWithoutSessionIsInternalError(t *testing.T) {
	handler := CartGet(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
