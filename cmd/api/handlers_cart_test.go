package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	crt "github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/cart"
)

type cartKey struct{ userID, productID int64 }

type stubCartRepo struct {
	mu    sync.Mutex
	items map[cartKey]crt.Item
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{items: map[cartKey]crt.Item{}}
}

func (s *stubCartRepo) Add(ctx context.Context, userID, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[cartKey{userID, productID}] = crt.Item{
		ProductID: productID, Name: "TestProd", Price: "10.00", Quantity: quantity,
	}
	return nil
}

func (s *stubCartRepo) ListByUser(ctx context.Context, userID int64) ([]crt.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []crt.Item
	for k, it := range s.items {
		if k.userID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubCartRepo) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := cartKey{userID, productID}
	if _, ok := s.items[k]; !ok {
		return false, nil
	}
	delete(s.items, k)
	return true, nil
}

func (s *stubCartRepo) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.items {
		if k.userID == userID {
			delete(s.items, k)
		}
	}
	return nil
}

func TestCart_AddListRemove(t *testing.T) {
	t.Parallel()

	repo := newStubCartRepo()
	r := gin.New()
	r.POST("/cart/items", addCartItemHandler(repo))
	r.GET("/cart/:user_id", getCartHandler(repo))
	r.DELETE("/cart/items", removeCartItemHandler(repo))

	w := doJSON(t, r, http.MethodPost, "/cart/items", `{"user_id":1,"product_id":7,"quantity":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/cart/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status=%d body=%s", w.Code, w.Body.String())
	}
	var items []crt.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil || len(items) != 1 {
		t.Fatalf("items=%v err=%v", items, err)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity=%d, expected 2", items[0].Quantity)
	}

	w = doJSON(t, r, http.MethodDelete, "/cart/items", `{"user_id":1,"product_id":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("remove: status=%d body=%s", w.Code, w.Body.String())
	}

	// second removal: nothing left
	w = doJSON(t, r, http.MethodDelete, "/cart/items", `{"user_id":1,"product_id":7}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("remove again: status=%d, expected 404", w.Code)
	}
}
