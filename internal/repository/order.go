package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/storage/db"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order model.Order) error
	ListAllOrders(ctx context.Context) ([]model.Order, error)
}

type orderRepository struct {
	db db.DB
}

func NewOrderRepository(db db.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r orderRepository) CreateOrder(ctx context.Context, order model.Order) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, name, mobile, state, district, address, created_at)
		VALUES (@id, @name, @mobile, @state, @district, @address, @created_at)
	`, pgx.NamedArgs{
		"id":         order.ID,
		"name":       order.Name,
		"mobile":     order.Mobile,
		"state":      order.State,
		"district":   order.District,
		"address":    order.Address,
		"created_at": order.CreatedAt,
	}); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r orderRepository) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, mobile, state, district, address, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	defer rows.Close()

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Order, error) {
		var order model.Order
		err := row.Scan(
			&order.ID,
			&order.Name,
			&order.Mobile,
			&order.State,
			&order.District,
			&order.Address,
			&order.CreatedAt,
		)
		return order, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect orders: %w", err)
	}

	return orders, nil
}
