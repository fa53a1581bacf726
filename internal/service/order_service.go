package service

import (
	"context"

	"app/internal/domain/model"
)

type OrderService interface {
	Checkout(ctx context.Context, payload model.CheckoutPayload) (model.OrderResult, error)
}
