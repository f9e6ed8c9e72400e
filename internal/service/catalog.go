package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/wwdevkhati/shop-backend/internal/apperr"
	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/repository"
	"github.com/wwdevkhati/shop-backend/internal/storage/imagestore"
)

// ProductImage is one uploaded file attached to a new product.
type ProductImage struct {
	Filename string
	Data     io.Reader
}

type CreateProductParams struct {
	Title       string
	Price       float64
	Description string
	Images      []ProductImage
}

type CatalogService interface {
	// CreateProduct uploads every image to the image store, then persists
	// the product referencing the returned URLs in upload order. Requires
	// at least one image. If an upload fails, nothing is persisted; images
	// already uploaded for the failed request are not cleaned up.
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	uploader    imagestore.Uploader
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	uploader imagestore.Uploader,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if len(params.Images) == 0 {
		return model.Product{}, apperr.NoImagesErr
	}

	imageURLs := make([]string, 0, len(params.Images))
	for _, img := range params.Images {
		url, err := s.uploader.Upload(ctx, img.Filename, img.Data)
		if err != nil {
			return model.Product{}, apperr.UploadErr.WrapParent(
				fmt.Errorf("upload image %q: %w", img.Filename, err))
		}
		imageURLs = append(imageURLs, url)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	product := model.Product{
		ID:          id,
		Title:       params.Title,
		Price:       params.Price,
		Description: params.Description,
		ImageURLs:   imageURLs,
		CreatedAt:   time.Now(),
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return model.Product{}, apperr.StoreErr.WrapParent(
			fmt.Errorf("product repository create product: %w", err))
	}

	return product, nil
}

func (s *catalogService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, apperr.StoreErr.WrapParent(
			fmt.Errorf("product repository list all products: %w", err))
	}

	return products, nil
}
