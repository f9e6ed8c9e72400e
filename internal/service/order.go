package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wwdevkhati/shop-backend/internal/apperr"
	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/repository"
	"github.com/wwdevkhati/shop-backend/internal/storage/mail"
)

type PlaceOrderParams struct {
	Name     string
	Mobile   string
	State    string
	District string
	Address  string
}

type OrderService interface {
	// PlaceOrder durably stores the order, then attempts the operator
	// notification. The stored order is the source of truth: a failed
	// notification is logged and never surfaced to the caller.
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (model.Order, error)
	ListAllOrders(ctx context.Context) ([]model.Order, error)
}

type orderService struct {
	logger    *slog.Logger
	orderRepo repository.OrderRepository
	notifier  mail.Notifier
}

func NewOrderService(
	logger *slog.Logger,
	orderRepo repository.OrderRepository,
	notifier mail.Notifier,
) OrderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, params PlaceOrderParams) (model.Order, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Order{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	order := model.Order{
		ID:        id,
		Name:      params.Name,
		Mobile:    params.Mobile,
		State:     params.State,
		District:  params.District,
		Address:   params.Address,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return model.Order{}, apperr.StoreErr.WrapParent(
			fmt.Errorf("order repository create order: %w", err))
	}

	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "error notifying operator about order",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.ListAllOrders(ctx)
	if err != nil {
		return nil, apperr.StoreErr.WrapParent(
			fmt.Errorf("order repository list all orders: %w", err))
	}

	return orders, nil
}
