package model

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer order. Name and Address are mandatory; the other
// contact fields are optional and stored empty when absent. Orders are
// append-only.
type Order struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile,omitempty"`
	State     string    `json:"state,omitempty"`
	District  string    `json:"district,omitempty"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
