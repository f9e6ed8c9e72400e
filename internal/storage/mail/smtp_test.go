package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wwdevkhati/shop-backend/internal/model"
	"github.com/wwdevkhati/shop-backend/internal/storage/mail"
)

func TestOrderBody(t *testing.T) {
	t.Run("Should render all fields in fixed order", func(t *testing.T) {
		body := mail.OrderBody(model.Order{
			Name:     "Ravi",
			Mobile:   "9800000000",
			State:    "Bagmati",
			District: "Kathmandu",
			Address:  "12 MG Road",
		})

		assert.Equal(t, "Name: Ravi\nMobile: 9800000000\nState: Bagmati\nDistrict: Kathmandu\nAddress: 12 MG Road", body)
	})

	t.Run("Should omit absent optional fields", func(t *testing.T) {
		body := mail.OrderBody(model.Order{
			Name:    "Ravi",
			Address: "12 MG Road",
		})

		assert.Equal(t, "Name: Ravi\nAddress: 12 MG Road", body)
	})
}
