package mail

import (
	"context"

	"github.com/wwdevkhati/shop-backend/internal/model"
)

// Notifier delivers a human-readable message about a placed order to the
// operator. Delivery is best effort: callers decide what to do with a
// failure, and this system only ever logs it.
type Notifier interface {
	OrderPlaced(ctx context.Context, order model.Order) error
}
