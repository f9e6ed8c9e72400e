package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwdevkhati/shop-backend/internal/model"
)

type productForm struct {
	title       string
	price       string
	description string
	images      []string
}

func newAddProductRequest(t *testing.T, form productForm) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	require.NoError(t, mw.WriteField("title", form.title))
	require.NoError(t, mw.WriteField("price", form.price))
	require.NoError(t, mw.WriteField("description", form.description))

	for _, name := range form.images {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = io.WriteString(fw, "bytes of "+name)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/add-product", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(testAdminUser, testAdminPass)
	return req
}

func TestAddProduct(t *testing.T) {
	t.Run("Should add product with image urls in upload order", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{
			title:       "Mug",
			price:       "9.99",
			description: "a mug",
			images:      []string{"a.jpg", "b.jpg"},
		})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Product added!", resp.Body.String())

		require.Len(t, env.productRepo.products, 1)
		product := env.productRepo.products[0]
		assert.Equal(t, "Mug", product.Title)
		assert.Equal(t, 9.99, product.Price)
		assert.Equal(t, []string{
			"https://images.example.com/a.jpg",
			"https://images.example.com/b.jpg",
		}, product.ImageURLs)
	})

	t.Run("Should reject request with zero images", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{title: "Mug", price: "9.99"})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, env.productRepo.products)
	})

	t.Run("Should reject missing title", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{price: "9.99", images: []string{"a.jpg"}})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, env.productRepo.products)
	})

	t.Run("Should reject negative price", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{title: "Mug", price: "-1", images: []string{"a.jpg"}})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, env.productRepo.products)
	})

	t.Run("Should reject non-numeric price", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{title: "Mug", price: "cheap", images: []string{"a.jpg"}})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Should deny request without credentials", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{title: "Mug", price: "9.99", images: []string{"a.jpg"}})
		req.Header.Del("Authorization")
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.NotEmpty(t, resp.Header().Get("WWW-Authenticate"))
		assert.Empty(t, env.uploader.uploaded)
		assert.Empty(t, env.productRepo.products)
	})

	t.Run("Should deny request with wrong credentials", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{title: "Mug", price: "9.99", images: []string{"a.jpg"}})
		req.SetBasicAuth(testAdminUser, "wrong")
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("Should respond server error when upload fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.uploader.err = errBoom

		req := newAddProductRequest(t, productForm{title: "Mug", price: "9.99", images: []string{"a.jpg"}})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Empty(t, env.productRepo.products)
	})

	t.Run("Should respond server error when store fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.productRepo.createErr = errBoom

		req := newAddProductRequest(t, productForm{title: "Mug", price: "9.99", images: []string{"a.jpg"}})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestListProducts(t *testing.T) {
	t.Run("Should list products newest first", func(t *testing.T) {
		env := newTestEnv(t)

		for _, title := range []string{"Mug", "Plate", "Bowl"} {
			req := newAddProductRequest(t, productForm{
				title:  title,
				price:  "5",
				images: []string{title + ".jpg"},
			})
			resp := httptest.NewRecorder()
			env.router.ServeHTTP(resp, req)
			require.Equal(t, http.StatusOK, resp.Code)
		}

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")

		var products []model.Product
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
		require.Len(t, products, 3)
		assert.Equal(t, "Bowl", products[0].Title)
		assert.Equal(t, "Plate", products[1].Title)
		assert.Equal(t, "Mug", products[2].Title)
	})

	t.Run("Should respond with the single product scenario", func(t *testing.T) {
		env := newTestEnv(t)

		req := newAddProductRequest(t, productForm{
			title:  "Mug",
			price:  "9.99",
			images: []string{"a.jpg"},
		})
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusOK, resp.Code)

		req = httptest.NewRequest(http.MethodGet, "/products", nil)
		resp = httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		var products []model.Product
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, []string{"https://images.example.com/a.jpg"}, products[0].ImageURLs)
	})

	t.Run("Should respond server error when store fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.productRepo.listErr = errBoom

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
