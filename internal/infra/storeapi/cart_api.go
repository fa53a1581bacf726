package storeapi

import (
	"context"
	"net/http"
	"net/url"

	"app/internal/domain/model"
)

// service.CartService のREST実装。
type CartAPI struct {
	c *Client
}

func NewCartAPI(c *Client) *CartAPI {
	return &CartAPI{c: c}
}

type getCartResponse struct {
	Items []model.CartItem `json:"items"`
}

func (a *CartAPI) GetCart(ctx context.Context) ([]model.CartItem, error) {
	var resp getCartResponse
	if err := a.c.doJSON(ctx, http.MethodGet, "/cart", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []model.CartItem{}
	}
	return resp.Items, nil
}

type updateQtyRequest struct {
	Qty int64 `json:"qty"`
}

func (a *CartAPI) UpdateItemQty(ctx context.Context, productID string, qty int64) error {
	path := "/cart/items/" + url.PathEscape(productID)
	return a.c.doJSON(ctx, http.MethodPut, path, updateQtyRequest{Qty: qty}, nil)
}

func (a *CartAPI) RemoveItem(ctx context.Context, productID string) error {
	path := "/cart/items/" + url.PathEscape(productID)
	return a.c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

type bulkRemoveRequest struct {
	ProductIDs []string `json:"product_ids"`
}

func (a *CartAPI) BulkRemove(ctx context.Context, productIDs []string) error {
	return a.c.doJSON(ctx, http.MethodPost, "/cart/items/remove", bulkRemoveRequest{ProductIDs: productIDs}, nil)
}
