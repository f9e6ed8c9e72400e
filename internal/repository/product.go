package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/storage/db"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product model.Product) error
	ListAllProducts(ctx context.Context) ([]model.Product, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	var price pgtype.Numeric
	if err := price.Scan(fmt.Sprintf("%f", product.Price)); err != nil {
		return fmt.Errorf("scan price: %w", err)
	}

	if _, err := r.db.Exec(ctx, `
		INSERT INTO products (id, title, description, price, image_urls, created_at)
		VALUES (@id, @title, @description, @price, @image_urls, @created_at)
	`, pgx.NamedArgs{
		"id":          product.ID,
		"title":       product.Title,
		"description": product.Description,
		"price":       price,
		"image_urls":  product.ImageURLs,
		"created_at":  product.CreatedAt,
	}); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, price, image_urls, created_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var (
			product model.Product
			price   pgtype.Numeric
		)
		if err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Description,
			&price,
			&product.ImageURLs,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}

		priceValue, err := price.Float64Value()
		if err != nil {
			return nil, fmt.Errorf("convert price to float64: %w", err)
		}
		product.Price = priceValue.Float64

		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}
