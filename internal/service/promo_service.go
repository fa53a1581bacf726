package service

import (
	"context"

	"app/internal/domain/model"
)

// コードの有効性・種別・説明文はすべてプロモサービス側が決める。
type PromoService interface {
	ValidateCode(ctx context.Context, code string) (model.AppliedPromo, error)
}
