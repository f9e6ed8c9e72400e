package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wwdevkhati/shop-backend/internal/apperr"
	"github.com/wwdevkhati/shop-backend/internal/service"
)

// maxUploadSize bounds the in-memory part of a multipart upload.
const maxUploadSize = 32 << 20

type addProductForm struct {
	Title       string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description string
}

func (s *Service) addProduct(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("parse multipart form: %w", err))
	}

	form := addProductForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("parse price: %w", err))
	}
	form.Price = price

	if err := s.validate.Validate(form); err != nil {
		return err
	}

	fileHeaders := r.MultipartForm.File["images"]
	images := make([]service.ProductImage, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			return apperr.ValidationErr.WrapParent(fmt.Errorf("open uploaded file %q: %w", fh.Filename, err))
		}
		//nolint:errcheck
		defer f.Close()

		images = append(images, service.ProductImage{
			Filename: fh.Filename,
			Data:     f,
		})
	}

	if _, err := s.catalogSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Title:       form.Title,
		Price:       form.Price,
		Description: form.Description,
		Images:      images,
	}); err != nil {
		return fmt.Errorf("catalog service create product: %w", err)
	}

	respondText(w, http.StatusOK, "Product added!")
	return nil
}

func (s *Service) listProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := s.catalogSvc.ListAllProducts(r.Context())
	if err != nil {
		return fmt.Errorf("catalog service list all products: %w", err)
	}

	return respondJSON(w, http.StatusOK, products)
}

func respondText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck
	w.Write([]byte(msg))
}

func respondJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
