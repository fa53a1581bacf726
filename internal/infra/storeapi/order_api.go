package storeapi

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

// service.OrderService のREST実装。
type OrderAPI struct {
	c *Client
}

func NewOrderAPI(c *Client) *OrderAPI {
	return &OrderAPI{c: c}
}

func (a *OrderAPI) Checkout(ctx context.Context, payload model.CheckoutPayload) (model.OrderResult, error) {
	var resp model.OrderResult
	if err := a.c.doJSON(ctx, http.MethodPost, "/orders", payload, &resp); err != nil {
		return model.OrderResult{}, err
	}
	return resp, nil
}
