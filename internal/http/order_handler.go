package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wwdevkhati/shop-backend/internal/apperr"
	"github.com/wwdevkhati/shop-backend/internal/service"
)

type placeOrderRequest struct {
	Name     string `json:"name" validate:"required"`
	Mobile   string `json:"mobile"`
	State    string `json:"state"`
	District string `json:"district"`
	Address  string `json:"address" validate:"required"`
}

func (s *Service) placeOrder(w http.ResponseWriter, r *http.Request) error {
	req, err := decodePlaceOrderRequest(r)
	if err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	if err := s.validate.Validate(req); err != nil {
		return err
	}

	if _, err := s.orderSvc.PlaceOrder(r.Context(), service.PlaceOrderParams{
		Name:     req.Name,
		Mobile:   req.Mobile,
		State:    req.State,
		District: req.District,
		Address:  req.Address,
	}); err != nil {
		return fmt.Errorf("order service place order: %w", err)
	}

	respondText(w, http.StatusOK, "Order placed!")
	return nil
}

// decodePlaceOrderRequest accepts either a JSON body or an urlencoded form.
// Fields beyond the declared set are ignored.
func decodePlaceOrderRequest(r *http.Request) (placeOrderRequest, error) {
	var req placeOrderRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := decodeJSONBody(r, &req); err != nil {
			return req, fmt.Errorf("decode json body: %w", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("parse form: %w", err)
	}

	req.Name = r.PostFormValue("name")
	req.Mobile = r.PostFormValue("mobile")
	req.State = r.PostFormValue("state")
	req.District = r.PostFormValue("district")
	req.Address = r.PostFormValue("address")

	return req, nil
}

func decodeJSONBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
