package httpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"pos-console/internal/backend"
	"pos-console/internal/composer"
	"pos-console/internal/domain"
	"pos-console/internal/session"

	"github.com/gin-gonic/gin"
)

type itemCall struct {
	saleID    int64
	productID int64
	quantity  int
}

type stockCall struct {
	productID int64
	stock     int
}

type uploadCall struct {
	kind     string
	id       int64
	filename string
	size     int
}

type stubBackend struct {
	loginRes    *backend.AuthResult
	loginErr    error
	registerRes *backend.AuthResult
	registerErr error

	customers    []domain.Customer
	customersErr error
	products     []domain.Product
	productsErr  error
	sales        []domain.Sale
	salesErr     error

	profile     *domain.Profile
	profileErr  error
	stockValue  int64
	topProducts []domain.TopProduct
	lowStock    []domain.Product

	createdCustomers []backend.CustomerInput
	updatedCustomers map[int64]backend.CustomerInput
	deletedCustomers []int64
	createdProducts  []backend.ProductInput
	updatedProducts  map[int64]backend.ProductInput
	deletedProducts  []int64
	uploads          []uploadCall

	saleID        int64
	createSaleErr error
	saleCustomer  int64
	saleTotal     int64
	items         []itemCall
	stocks        []stockCall
}

func (s *stubBackend) Login(_ context.Context, _, _ string) (*backend.AuthResult, error) {
	return s.loginRes, s.loginErr
}

func (s *stubBackend) Register(_ context.Context, _, _ string) (*backend.AuthResult, error) {
	return s.registerRes, s.registerErr
}

func (s *stubBackend) ListCustomers(_ context.Context, _ string) ([]domain.Customer, error) {
	return s.customers, s.customersErr
}

func (s *stubBackend) CreateCustomer(_ context.Context, _ string, in backend.CustomerInput) error {
	s.createdCustomers = append(s.createdCustomers, in)
	return nil
}

func (s *stubBackend) UpdateCustomer(_ context.Context, _ string, id int64, in backend.CustomerInput) error {
	if s.updatedCustomers == nil {
		s.updatedCustomers = make(map[int64]backend.CustomerInput)
	}
	s.updatedCustomers[id] = in
	return nil
}

func (s *stubBackend) DeleteCustomer(_ context.Context, _ string, id int64) error {
	s.deletedCustomers = append(s.deletedCustomers, id)
	return nil
}

func (s *stubBackend) UploadCustomerPicture(_ context.Context, _ string, id int64, filename string, file io.Reader) error {
	content, _ := io.ReadAll(file)
	s.uploads = append(s.uploads, uploadCall{kind: "customer", id: id, filename: filename, size: len(content)})
	return nil
}

func (s *stubBackend) ListInventory(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.productsErr
}

func (s *stubBackend) CreateProduct(_ context.Context, _ string, in backend.ProductInput) error {
	s.createdProducts = append(s.createdProducts, in)
	return nil
}

func (s *stubBackend) UpdateProduct(_ context.Context, _ string, id int64, in backend.ProductInput) error {
	if s.updatedProducts == nil {
		s.updatedProducts = make(map[int64]backend.ProductInput)
	}
	s.updatedProducts[id] = in
	return nil
}

func (s *stubBackend) DeleteProduct(_ context.Context, _ string, id int64) error {
	s.deletedProducts = append(s.deletedProducts, id)
	return nil
}

func (s *stubBackend) UploadProductPicture(_ context.Context, _ string, id int64, filename string, file io.Reader) error {
	content, _ := io.ReadAll(file)
	s.uploads = append(s.uploads, uploadCall{kind: "product", id: id, filename: filename, size: len(content)})
	return nil
}

func (s *stubBackend) ListSales(_ context.Context, _ string) ([]domain.Sale, error) {
	return s.sales, s.salesErr
}

func (s *stubBackend) GetProfile(_ context.Context, _ string) (*domain.Profile, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	if s.profile == nil {
		return &domain.Profile{Username: "jane"}, nil
	}
	return s.profile, nil
}

func (s *stubBackend) InventoryValue(_ context.Context, _ string) (int64, error) {
	return s.stockValue, nil
}

func (s *stubBackend) TopProducts(_ context.Context, _ string) ([]domain.TopProduct, error) {
	return s.topProducts, nil
}

func (s *stubBackend) LowStock(_ context.Context, _ string, threshold int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.lowStock {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubBackend) CreateSale(_ context.Context, _ string, customerID, totalCents int64) (int64, error) {
	if s.createSaleErr != nil {
		return 0, s.createSaleErr
	}
	s.saleCustomer = customerID
	s.saleTotal = totalCents
	return s.saleID, nil
}

func (s *stubBackend) AddSaleItem(_ context.Context, _ string, saleID, productID int64, quantity int) error {
	s.items = append(s.items, itemCall{saleID: saleID, productID: productID, quantity: quantity})
	return nil
}

func (s *stubBackend) UpdateStock(_ context.Context, _ string, line domain.CartLine, stock int) error {
	s.stocks = append(s.stocks, stockCall{productID: line.ProductID, stock: stock})
	return nil
}

type testEnv struct {
	router   *gin.Engine
	backend  *stubBackend
	sessions session.Store
	carts    *composer.Registry
}

// newTestEnv builds a router around the stub with a session already
// stored under ID "sid" (backend token "tok").
func newTestEnv(t *testing.T, stub *stubBackend) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemory()
	if err := sessions.Put(context.Background(), "sid", session.Session{Token: "tok", Username: "jane"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	carts := composer.NewRegistry()

	router, err := buildRouter(log.New(io.Discard, "", 0), Deps{
		Backend:  stub,
		Sessions: sessions,
		Carts:    carts,
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return &testEnv{router: router, backend: stub, sessions: sessions, carts: carts}
}
