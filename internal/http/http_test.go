package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/wwdevkhati/shop-backend/internal/config"
	shophttp "github.com/wwdevkhati/shop-backend/internal/http"
	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/service"
)

const (
	testAdminUser = "imadmin"
	testAdminPass = "sw0rdfish"
)

type fakeProductRepo struct {
	products  []model.Product
	createErr error
	listErr   error
}

func (r *fakeProductRepo) CreateProduct(_ context.Context, product model.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.products = append(r.products, product)
	return nil
}

// ListAllProducts returns newest first, like the real store does.
func (r *fakeProductRepo) ListAllProducts(_ context.Context) ([]model.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]model.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, r.products[i])
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders    []model.Order
	createErr error
	listErr   error
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order model.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders = append(r.orders, order)
	return nil
}

// ListAllOrders returns newest first, like the real store does.
func (r *fakeOrderRepo) ListAllOrders(_ context.Context) ([]model.Order, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]model.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

type fakeUploader struct {
	uploaded []string
	err      error
}

func (u *fakeUploader) Upload(_ context.Context, filename string, data io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	if _, err := io.ReadAll(data); err != nil {
		return "", err
	}
	u.uploaded = append(u.uploaded, filename)
	return "https://images.example.com/" + filename, nil
}

type fakeNotifier struct {
	notified []model.Order
	err      error
}

func (n *fakeNotifier) OrderPlaced(_ context.Context, order model.Order) error {
	n.notified = append(n.notified, order)
	return n.err
}

type fakeHealth struct {
	err error
}

func (h *fakeHealth) IsHealthy(_ context.Context) (bool, error) {
	if h.err != nil {
		return false, h.err
	}
	return true, nil
}

type testEnv struct {
	router chi.Router

	productRepo *fakeProductRepo
	orderRepo   *fakeOrderRepo
	uploader    *fakeUploader
	notifier    *fakeNotifier
	health      *fakeHealth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		productRepo: &fakeProductRepo{},
		orderRepo:   &fakeOrderRepo{},
		uploader:    &fakeUploader{},
		notifier:    &fakeNotifier{},
		health:      &fakeHealth{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := shophttp.New(
		config.HTTP{Port: 0, Swagger: false},
		config.Admin{User: testAdminUser, Password: testAdminPass},
		logger,
		service.NewCatalogService(env.productRepo, env.uploader),
		service.NewOrderService(logger, env.orderRepo, env.notifier),
		env.health,
	)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	svc.RegisterHandlers(r)
	env.router = r

	return env
}

var errBoom = errors.New("boom")
