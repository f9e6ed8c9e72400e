package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwdevkhati/shop-backend/internal/apperr"
	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/service"
	"github.com/wwdevkhati/shop-backend/pkg/zerror"
)

// assertZErrorCode asserts err is a ZError carrying the given code.
func assertZErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var zErr zerror.ZError
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, code, zErr.Code())
}

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

func (r *fakeProductRepo) ListAllProducts(_ context.Context) ([]model.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.products, nil
}

type fakeUploader struct {
	uploaded  []string
	failAfter int // fail when this many uploads already succeeded, -1 never
}

func (u *fakeUploader) Upload(_ context.Context, filename string, data io.Reader) (string, error) {
	if u.failAfter >= 0 && len(u.uploaded) == u.failAfter {
		return "", errors.New("provider unreachable")
	}
	if _, err := io.ReadAll(data); err != nil {
		return "", err
	}
	u.uploaded = append(u.uploaded, filename)
	return "https://images.example.com/" + filename, nil
}

func newImages(names ...string) []service.ProductImage {
	images := make([]service.ProductImage, 0, len(names))
	for _, name := range names {
		images = append(images, service.ProductImage{
			Filename: name,
			Data:     strings.NewReader("bytes of " + name),
		})
	}
	return images
}

func TestCatalogServiceCreateProduct(t *testing.T) {
	t.Run("Should persist product with image urls in upload order", func(t *testing.T) {
		repo := &fakeProductRepo{}
		up := &fakeUploader{failAfter: -1}
		svc := service.NewCatalogService(repo, up)

		product, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
			Title:       "Mug",
			Price:       9.99,
			Description: "a mug",
			Images:      newImages("a.jpg", "b.jpg", "c.jpg"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://images.example.com/a.jpg",
			"https://images.example.com/b.jpg",
			"https://images.example.com/c.jpg",
		}, product.ImageURLs)
		assert.NotEqual(t, "", product.ID.String())
		assert.False(t, product.CreatedAt.IsZero())

		require.Len(t, repo.products, 1)
		assert.Equal(t, product, repo.products[0])
	})

	t.Run("Should reject zero images without touching uploader or store", func(t *testing.T) {
		repo := &fakeProductRepo{}
		up := &fakeUploader{failAfter: -1}
		svc := service.NewCatalogService(repo, up)

		_, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
			Title: "Mug",
			Price: 9.99,
		})

		assertZErrorCode(t, err, apperr.NoImagesErrorCode)
		assert.Empty(t, up.uploaded)
		assert.Empty(t, repo.products)
	})

	t.Run("Should not persist product when a later upload fails", func(t *testing.T) {
		repo := &fakeProductRepo{}
		up := &fakeUploader{failAfter: 1}
		svc := service.NewCatalogService(repo, up)

		_, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
			Title:  "Mug",
			Price:  9.99,
			Images: newImages("a.jpg", "b.jpg"),
		})

		assertZErrorCode(t, err, apperr.UploadErrorCode)
		assert.Empty(t, repo.products)
		// the first upload already succeeded and stays orphaned
		assert.Equal(t, []string{"a.jpg"}, up.uploaded)
	})

	t.Run("Should wrap store failure as dependency error", func(t *testing.T) {
		repo := &fakeProductRepo{createErr: errors.New("connection refused")}
		up := &fakeUploader{failAfter: -1}
		svc := service.NewCatalogService(repo, up)

		_, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
			Title:  "Mug",
			Price:  9.99,
			Images: newImages("a.jpg"),
		})

		assertZErrorCode(t, err, apperr.StoreErrorCode)
	})
}

func TestCatalogServiceListAllProducts(t *testing.T) {
	t.Run("Should return products from the repository", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := service.NewCatalogService(repo, &fakeUploader{failAfter: -1})

		for i := range 3 {
			_, err := svc.CreateProduct(context.Background(), service.CreateProductParams{
				Title:  fmt.Sprintf("Mug %d", i),
				Price:  float64(i),
				Images: newImages(fmt.Sprintf("%d.jpg", i)),
			})
			require.NoError(t, err)
		}

		products, err := svc.ListAllProducts(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("Should wrap store failure as dependency error", func(t *testing.T) {
		repo := &fakeProductRepo{listErr: errors.New("connection refused")}
		svc := service.NewCatalogService(repo, &fakeUploader{failAfter: -1})

		_, err := svc.ListAllProducts(context.Background())
		assertZErrorCode(t, err, apperr.StoreErrorCode)
	})
}
