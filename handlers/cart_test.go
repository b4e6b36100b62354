package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cart"
)

// stubCartService, çağrıldığı sepet id'sini ve ürün id'sini kaydeder.
type stubCartService struct {
	gotID, gotItem string
	gotDelta       int
	checkoutErr    error
}

func (s *stubCartService) summary(id string) *cart.Summary {
	if id == "" {
		id = "new-cart"
	}
	return &cart.Summary{ID: id, Items: []cart.Item{}}
}

func (s *stubCartService) Get(_ context.Context, id string) (*cart.Summary, error) {
	s.gotID = id
	return s.summary(id), nil
}

func (s *stubCartService) Add(_ context.Context, id string, req *models.AddToCartRequest) (*cart.Summary, error) {
	s.gotID, s.gotItem = id, req.MenuItemID
	return s.summary(id), nil
}

func (s *stubCartService) Remove(_ context.Context, id, itemID string) (*cart.Summary, error) {
	s.gotID, s.gotItem = id, itemID
	return s.summary(id), nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, id, itemID string, req *models.CartDeltaRequest) (*cart.Summary, error) {
	s.gotID, s.gotItem, s.gotDelta = id, itemID, req.Delta
	return s.summary(id), nil
}

func (s *stubCartService) Clear(_ context.Context, id string) (*cart.Summary, error) {
	s.gotID = id
	return s.summary(id), nil
}

func (s *stubCartService) Checkout(_ context.Context, id string) (*models.CheckoutResponse, error) {
	s.gotID = id
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	return &models.CheckoutResponse{Message: "Hello", URL: "https://wa.me/1?text=Hello"}, nil
}

func newCartMux(svc *stubCartService) *http.ServeMux {
	h := NewCartHandler(svc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/cart", h.Get)
	mux.HandleFunc("POST /api/cart/items", h.Add)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.Remove)
	mux.HandleFunc("POST /api/cart/checkout", h.Checkout)
	return mux
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) pkg.APIResponse {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return pkg.APIResponse{Success: env.Success, Error: env.Error}
}

func TestCartHandlerPassesCartID(t *testing.T) {
	svc := &stubCartService{}
	mux := newCartMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"menu_item_id":"dosa"}`))
	req.Header.Set(CartIDHeader, "cart-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary cart.Summary
	env := decodeEnvelope(t, rec, &summary)
	assert.True(t, env.Success)
	assert.Equal(t, "cart-1", summary.ID)
	assert.Equal(t, "cart-1", svc.gotID)
	assert.Equal(t, "dosa", svc.gotItem)

	req = httptest.NewRequest(http.MethodPatch, "/api/cart/items/dosa", strings.NewReader(`{"delta":-1}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.gotID, "missing header means a new cart")
	assert.Equal(t, -1, svc.gotDelta)
	decodeEnvelope(t, rec, &summary)
	assert.Equal(t, "new-cart", summary.ID)
}

func TestCartHandlerRejectsBadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newCartMux(&stubCartService{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid request body", env.Error)
}

func TestCartHandlerCheckout(t *testing.T) {
	svc := &stubCartService{}
	mux := newCartMux(svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var out models.CheckoutResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, "https://wa.me/1?text=Hello", out.URL)

	svc.checkoutErr = pkg.ErrBadRequest
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
