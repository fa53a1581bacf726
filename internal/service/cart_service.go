// Package service はストアバックエンドへの出口ポートです。
// 仕様どおりカート・プロモ・注文を別コラボレータとして分けて受け取ります。
package service

import (
	"context"

	"app/internal/domain/model"
)

type CartService interface {
	GetCart(ctx context.Context) ([]model.CartItem, error)
	UpdateItemQty(ctx context.Context, productID string, qty int64) error
	RemoveItem(ctx context.Context, productID string) error
	// 2件以上の削除はまとめて1回で送る
	BulkRemove(ctx context.Context, productIDs []string) error
}
