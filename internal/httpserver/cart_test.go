package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"pos-console/internal/domain"
)

var (
	testRice = domain.Product{ID: 5, Name: "Rice", PriceCents: 1000, Stock: 20}
	testOil  = domain.Product{ID: 7, Name: "Cooking Oil", PriceCents: 350, Stock: 40}
)

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice, testOil}, saleID: 9}
	env := newTestEnv(t, stub)

	rec := doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart := decodeCart(t, rec.Body.Bytes())
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 1 || cart.TotalCents != 1000 {
		t.Fatalf("unexpected cart: %+v", cart)
	}

	rec = doJSON(env, http.MethodPut, "/cart/customer", "sid", `{"customerId":1}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	rec = doJSON(env, http.MethodPut, "/cart/lines/0", "sid", `{"quantity":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart = decodeCart(t, rec.Body.Bytes())
	if cart.TotalCents != 3000 {
		t.Fatalf("expected total 3000, got %d", cart.TotalCents)
	}

	rec = doJSON(env, http.MethodPost, "/cart/submit", "sid", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.saleCustomer != 1 || stub.saleTotal != 3000 {
		t.Fatalf("unexpected sale header: customer=%d total=%d", stub.saleCustomer, stub.saleTotal)
	}
	if len(stub.items) != 1 || stub.items[0] != (itemCall{saleID: 9, productID: 5, quantity: 3}) {
		t.Fatalf("unexpected sale items: %+v", stub.items)
	}

	// Submission discards the cart.
	rec = doJSON(env, http.MethodGet, "/cart", "sid", "")
	cart = decodeCart(t, rec.Body.Bytes())
	if len(cart.Lines) != 0 || cart.CustomerID != 0 {
		t.Fatalf("cart not reset: %+v", cart)
	}
}

func TestAddCartLineMerges(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice}}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	rec := doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	cart := decodeCart(t, rec.Body.Bytes())
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected one merged line with quantity 2, got %+v", cart.Lines)
	}
}

func TestAddCartLineUnknownProduct(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice}}
	env := newTestEnv(t, stub)

	rec := doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":999}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUpdateCartLineSwapsProduct(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice, testOil}}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	rec := doJSON(env, http.MethodPut, "/cart/lines/0", "sid", `{"productId":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cart := decodeCart(t, rec.Body.Bytes())
	if cart.Lines[0].ProductID != 7 || cart.Lines[0].UnitPriceCents != 350 {
		t.Fatalf("price not re-snapshotted: %+v", cart.Lines[0])
	}
}

func TestUpdateCartLineRejectedEditLeavesLineUntouched(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice, testOil}}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)

	// A bad quantity alongside a product swap must reject the whole
	// edit, not half-apply it.
	rec := doJSON(env, http.MethodPut, "/cart/lines/0", "sid", `{"productId":7,"quantity":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	line := env.carts.Get("sid").Lines()[0]
	if line.ProductID != 5 || line.Quantity != 1 {
		t.Fatalf("line changed despite rejection: %+v", line)
	}

	// Same for an unknown product alongside a valid quantity.
	rec = doJSON(env, http.MethodPut, "/cart/lines/0", "sid", `{"productId":999,"quantity":4}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	line = env.carts.Get("sid").Lines()[0]
	if line.ProductID != 5 || line.Quantity != 1 {
		t.Fatalf("line changed despite rejection: %+v", line)
	}
}

func TestUpdateCartLineRejectsZeroQuantity(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice}}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	rec := doJSON(env, http.MethodPut, "/cart/lines/0", "sid", `{"quantity":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRemoveCartLine(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice, testOil}}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":7}`)
	rec := doJSON(env, http.MethodDelete, "/cart/lines/0", "sid", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cart := decodeCart(t, rec.Body.Bytes())
	if len(cart.Lines) != 1 || cart.Lines[0].ProductID != 7 {
		t.Fatalf("unexpected cart after removal: %+v", cart)
	}
}

func TestSubmitWithoutCustomer(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice}}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	rec := doJSON(env, http.MethodPost, "/cart/submit", "sid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "customer") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSubmitSkipsInsufficientStock(t *testing.T) {
	stub := &stubBackend{products: []domain.Product{testRice, testOil}, saleID: 9}
	env := newTestEnv(t, stub)

	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":5}`)
	doJSON(env, http.MethodPut, "/cart/lines/0", "sid", `{"quantity":25}`)
	doJSON(env, http.MethodPost, "/cart/lines", "sid", `{"productId":7}`)
	doJSON(env, http.MethodPut, "/cart/customer", "sid", `{"customerId":1}`)

	rec := doJSON(env, http.MethodPost, "/cart/submit", "sid", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "warnings") {
		t.Fatalf("expected warnings in response: %s", rec.Body.String())
	}
	if len(stub.items) != 1 || stub.items[0].productID != 7 {
		t.Fatalf("expected only the in-stock line, got %+v", stub.items)
	}
}
