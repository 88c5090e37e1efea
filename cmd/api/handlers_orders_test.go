package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	ord "github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/order"
)

//
// ---------- STUBS & FAKES ----------
//

// stubOrderRepo implements ord.Repository in memory. It mimics the real
// repo's all-or-nothing contract: on failure nothing is recorded.
type stubOrderRepo struct {
	mu      sync.Mutex
	nextID  int64
	lastReq *ord.CheckoutRequest

	summaries map[int64][]ord.Summary
	items     map[int64][]ord.LineView

	points map[int64]int
	coins  map[int64]int

	failWith error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		nextID:    41,
		summaries: map[int64][]ord.Summary{},
		items:     map[int64][]ord.LineView{},
		points:    map[int64]int{},
		coins:     map[int64]int{},
	}
}

func (s *stubOrderRepo) Finalize(ctx context.Context, req *ord.CheckoutRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	s.nextID++
	cp := *req
	s.lastReq = &cp
	var lines []ord.LineView
	for _, it := range req.Items {
		lines = append(lines, ord.LineView{ProductName: "TestProd", Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	s.items[s.nextID] = lines
	s.summaries[req.UserID] = append(s.summaries[req.UserID], ord.Summary{
		ID: s.nextID, Total: req.FinalValue, CreatedAt: time.Now(),
	})
	s.points[req.UserID] += req.PointsEarned
	s.coins[req.UserID] = req.FinalCoinBalance
	return s.nextID, nil
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]ord.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ord.Summary(nil), s.summaries[userID]...), nil
}

func (s *stubOrderRepo) GetItems(ctx context.Context, orderID int64) ([]ord.LineView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.items[orderID]
	if !ok {
		return nil, ord.ErrNotFound
	}
	return lines, nil
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

//
// ---------- TESTS ----------
//

func TestCheckout_HappyPath(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := gin.New()
	r.POST("/orders/checkout", checkoutHandler(repo))

	body := `{"user_id":1,"final_value":"59.90",
		"items":[{"product_id":7,"quantity":1,"unit_price":"59.90"}],
		"coins_spent":0,"points_earned":5,"final_coin_balance":15}`
	w := doJSON(t, r, http.MethodPost, "/orders/checkout", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		OrderID int64 `json:"order_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.OrderID == 0 {
		t.Fatalf("no order_id in response: %s", w.Body.String())
	}
	if repo.lastReq == nil || len(repo.lastReq.Items) != 1 {
		t.Fatalf("order/items not persisted")
	}
	// reward consistency: points += earned, coins = supplied balance
	if repo.points[1] != 5 {
		t.Fatalf("points=%d, expected 5", repo.points[1])
	}
	if repo.coins[1] != 15 {
		t.Fatalf("coins=%d, expected 15", repo.coins[1])
	}

	// item view round-trips with submitted quantity and unit price
	items, err := repo.GetItems(context.Background(), resp.OrderID)
	if err != nil || len(items) != 1 {
		t.Fatalf("items=%v err=%v", items, err)
	}
	if items[0].Quantity != 1 || items[0].UnitPrice != "59.90" {
		t.Fatalf("unexpected line: %+v", items[0])
	}
}

func TestCheckout_EmptyItemsAccepted(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := gin.New()
	r.POST("/orders/checkout", checkoutHandler(repo))

	body := `{"user_id":1,"final_value":"0","items":[],
		"coins_spent":0,"points_earned":0,"final_coin_balance":0}`
	w := doJSON(t, r, http.MethodPost, "/orders/checkout", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s (empty item list must be accepted)", w.Code, w.Body.String())
	}
	if repo.lastReq == nil || len(repo.lastReq.Items) != 0 {
		t.Fatalf("expected an order with zero line items")
	}
}

func TestCheckout_TotalMismatchRejected(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := gin.New()
	r.POST("/orders/checkout", checkoutHandler(repo))

	body := `{"user_id":1,"final_value":"99.00",
		"items":[{"product_id":7,"quantity":1,"unit_price":"59.90"}],
		"coins_spent":0,"points_earned":5,"final_coin_balance":15}`
	w := doJSON(t, r, http.MethodPost, "/orders/checkout", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
	}
	if repo.lastReq != nil {
		t.Fatalf("store must not be touched on validation failure")
	}
}

func TestCheckout_StorageFailureLeavesNothing(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.failWith = errors.New("commit failed")
	r := gin.New()
	r.POST("/orders/checkout", checkoutHandler(repo))

	body := `{"user_id":1,"final_value":"59.90",
		"items":[{"product_id":7,"quantity":1,"unit_price":"59.90"}],
		"coins_spent":0,"points_earned":5,"final_coin_balance":15}`
	w := doJSON(t, r, http.MethodPost, "/orders/checkout", body)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s (expected 500)", w.Code, w.Body.String())
	}
	// atomicity: no order, no items, no balance change
	if repo.lastReq != nil || len(repo.items) != 0 || repo.points[1] != 0 || repo.coins[1] != 0 {
		t.Fatalf("partial state observable after failed finalize")
	}
}

func TestCheckout_UserNotFound(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.failWith = ord.ErrUserNotFound
	r := gin.New()
	r.POST("/orders/checkout", checkoutHandler(repo))

	body := `{"user_id":999,"final_value":"0","items":[],
		"coins_spent":0,"points_earned":0,"final_coin_balance":0}`
	w := doJSON(t, r, http.MethodPost, "/orders/checkout", body)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (expected 404)", w.Code, w.Body.String())
	}
}

func TestListOrdersByUser_OK(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.summaries[1] = []ord.Summary{
		{ID: 42, Total: "59.90", CreatedAt: time.Now(), AlreadyRated: true},
		{ID: 43, Total: "10.00", CreatedAt: time.Now(), AlreadyRated: false},
	}
	r := gin.New()
	r.GET("/orders/user/:user_id", listOrdersByUserHandler(repo))

	w := doJSON(t, r, http.MethodGet, "/orders/user/1?limit=10&offset=0", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out []ord.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 || !out[0].AlreadyRated || out[1].AlreadyRated {
		t.Fatalf("already_rated flags wrong: %+v", out)
	}
}

func TestGetOrderItems_NotFound(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := gin.New()
	r.GET("/orders/:id/items", getOrderItemsHandler(repo))

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/%d/items", 12345), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (expected 404)", w.Code, w.Body.String())
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
