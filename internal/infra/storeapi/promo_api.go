package storeapi

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

// service.PromoService のREST実装。
type PromoAPI struct {
	c *Client
}

func NewPromoAPI(c *Client) *PromoAPI {
	return &PromoAPI{c: c}
}

type validateCodeRequest struct {
	Code string `json:"code"`
}

func (a *PromoAPI) ValidateCode(ctx context.Context, code string) (model.AppliedPromo, error) {
	var resp model.AppliedPromo
	if err := a.c.doJSON(ctx, http.MethodPost, "/promotions/validate", validateCodeRequest{Code: code}, &resp); err != nil {
		return model.AppliedPromo{}, err
	}
	return resp, nil
}
