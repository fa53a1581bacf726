package usecase

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	"app/internal/pricing"
	"app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocking services
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context) ([]model.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateItemQty(ctx context.Context, productID string, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCartService) BulkRemove(ctx context.Context, productIDs []string) error {
	args := m.Called(ctx, productIDs)
	return args.Error(0)
}

type MockPromoService struct {
	mock.Mock
}

func (m *MockPromoService) ValidateCode(ctx context.Context, code string) (model.AppliedPromo, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.AppliedPromo), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, payload model.CheckoutPayload) (model.OrderResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(model.OrderResult), args.Error(1)
}

func newTestUsecase(cartSvc service.CartService, promoSvc service.PromoService, orders service.OrderService) *CartUsecase {
	checkout := NewCheckoutUsecase(orders)
	checkout.newID = func() string { return "test-key" }
	return NewCartUsecase(cartSvc, promoSvc, checkout, pricing.DefaultConfig())
}

func twoItems() []model.CartItem {
	return []model.CartItem{
		{ProductID: "p1", ProductName: "A", Price: 100000, Qty: 2},
		{ProductID: "p2", ProductName: "B", Price: 50000, Qty: 1},
	}
}

func validAddress() model.Address {
	return model.Address{Recipient: "山田太郎", Phone: "090-0000-0000", AddressLine: "東京都千代田区1-1"}
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	he, ok := AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, kind, he.Kind)
}

// Test: 読込成功で明細置き換え＋全選択、金額も再計算
func TestLoadSuccess(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))

	snap, err := uc.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Items, 2)
	assert.Equal(t, []string{"p1", "p2"}, snap.SelectedIDs)
	assert.False(t, snap.Loading)
	assert.Equal(t, int64(250000), snap.Totals.Subtotal)
	cartSvc.AssertExpectations(t)
}

// Test: 読込失敗はRemoteErrorで、Loadingは必ず戻る
func TestLoadFailure(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(nil, &service.RemoteError{StatusCode: 500, Message: "cart unavailable"})

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))

	snap, err := uc.Load(context.Background())
	requireKind(t, err, KindRemote)
	assert.False(t, snap.Loading)
	assert.Equal(t, "cart unavailable", snap.Error)
}

// Test: 読込実行中の二重読込は409で拒否
func TestLoadRejectsConcurrentLoad(t *testing.T) {
	cartSvc := new(MockCartService)
	entered := make(chan struct{})
	release := make(chan struct{})
	cartSvc.On("GetCart", mock.Anything).
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(twoItems(), nil)

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))

	done := make(chan error, 1)
	go func() {
		_, err := uc.Load(context.Background())
		done <- err
	}()

	<-entered
	_, err := uc.Load(context.Background())
	requireKind(t, err, KindConflict)

	close(release)
	require.NoError(t, <-done)
	cartSvc.AssertNumberOfCalls(t, "GetCart", 1)
}

// Test: 数量1未満はネットワークに出る前に弾く
func TestUpdateQtyRejectsBelowOne(t *testing.T) {
	cartSvc := new(MockCartService)
	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))

	_, err := uc.UpdateQty(context.Background(), "p1", 0)
	requireKind(t, err, KindValidation)
	cartSvc.AssertNotCalled(t, "UpdateItemQty", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 明細に無いIDの数量変更はローカルno-op（外部にも出さない）
func TestUpdateQtyUnknownIDIsNoop(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	snap, err := uc.UpdateQty(context.Background(), "ghost", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Items[0].Qty)
	cartSvc.AssertNotCalled(t, "UpdateItemQty", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 数量変更は外部更新に成功してからローカルへ反映
func TestUpdateQtySuccess(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)
	cartSvc.On("UpdateItemQty", mock.Anything, "p1", int64(5)).Return(nil)

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	snap, err := uc.UpdateQty(context.Background(), "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), snap.Items[0].Qty)
	assert.Equal(t, int64(550000), snap.Totals.Subtotal)
	cartSvc.AssertExpectations(t)
}

// Test: 外部更新が失敗したらローカルは一切変えない
func TestUpdateQtyFailureKeepsState(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)
	cartSvc.On("UpdateItemQty", mock.Anything, "p1", int64(5)).Return(errors.New("conn refused"))

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	snap, err := uc.UpdateQty(context.Background(), "p1", 5)
	requireKind(t, err, KindRemote)
	assert.Equal(t, int64(2), snap.Items[0].Qty)
	assert.False(t, snap.Loading)
}

// Test: 1件削除は単体API
func TestRemoveSingleItemUsesSingleCall(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)
	cartSvc.On("RemoveItem", mock.Anything, "p1").Return(nil)

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	snap, err := uc.RemoveItems(context.Background(), []string{"p1"})
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, []string{"p2"}, snap.SelectedIDs)
	cartSvc.AssertNotCalled(t, "BulkRemove", mock.Anything, mock.Anything)
}

// Test: 2件以上は一括API。選択からも消える
func TestRemoveMultipleItemsUsesBulkCall(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)
	cartSvc.On("BulkRemove", mock.Anything, []string{"p1", "p2"}).Return(nil)

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	snap, err := uc.RemoveItems(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)

	assert.Len(t, snap.Items, 0)
	assert.Len(t, snap.SelectedIDs, 0)
	assert.Equal(t, int64(0), snap.Totals.Subtotal)
	cartSvc.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything)
}

// Test: 削除失敗なら明細も選択もそのまま（all-or-nothing）
func TestRemoveFailureKeepsState(t *testing.T) {
	cartSvc := new(MockCartService)
	cartSvc.On("GetCart", mock.Anything).Return(twoItems(), nil)
	cartSvc.On("RemoveItem", mock.Anything, "p1").Return(&service.RemoteError{StatusCode: 500, Message: "db down"})

	uc := newTestUsecase(cartSvc, new(MockPromoService), new(MockOrderService))
	_, err := uc.Load(context.Background())
	require.NoError(t, err)

	snap, err := uc.RemoveItems(context.Background(), []string{"p1"})
	requireKind(t, err, KindRemote)
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, []string{"p1", "p2"}, snap.SelectedIDs)
}

// Test: 空コードはネットワークに出る前に弾く
func TestApplyPromoEmptyCode(t *testing.T) {
	promoSvc := new(MockPromoService)
	uc := newTestUsecase(new(MockCartService), promoSvc, new(MockOrderService))

	_, err := uc.ApplyPromo(context.Background(), "   ")
	requireKind(t, err, KindValidation)
	promoSvc.AssertNotCalled(t, "ValidateCode", mock.Anything, mock.Anything)
}

// Test: コードはtrim＋大文字化して送る
func TestApplyPromoNormalizesCode(t *testing.T) {
	promoSvc := new(MockPromoService)
	promoSvc.On("ValidateCode", mock.Anything, "SAVE10").
		Return(model.AppliedPromo{Code: "SAVE10", Type: model.PromoTypePercent, Value: 10}, nil)

	uc := newTestUsecase(new(MockCartService), promoSvc, new(MockOrderService))

	snap, err := uc.ApplyPromo(context.Background(), "  save10 ")
	require.NoError(t, err)
	require.NotNil(t, snap.AppliedPromo)
	assert.Equal(t, "SAVE10", snap.AppliedPromo.Code)
	promoSvc.AssertExpectations(t)
}

// Test: 2回適用したら後勝ちで置き換え
func TestApplyPromoReplacesPrevious(t *testing.T) {
	promoSvc := new(MockPromoService)
	promoSvc.On("ValidateCode", mock.Anything, "CODEA").
		Return(model.AppliedPromo{Code: "CODEA", Type: model.PromoTypePercent, Value: 5}, nil)
	promoSvc.On("ValidateCode", mock.Anything, "CODEB").
		Return(model.AppliedPromo{Code: "CODEB", Type: model.PromoTypeFixed, Value: 1000}, nil)

	uc := newTestUsecase(new(MockCartService), promoSvc, new(MockOrderService))

	_, err := uc.ApplyPromo(context.Background(), "CODEA")
	require.NoError(t, err)
	snap, err := uc.ApplyPromo(context.Background(), "CODEB")
	require.NoError(t, err)

	require.NotNil(t, snap.AppliedPromo)
	assert.Equal(t, "CODEB", snap.AppliedPromo.Code)
}

// Test: 検証失敗では適用中のプロモを変えない
func TestApplyPromoFailureKeepsCurrent(t *testing.T) {
	promoSvc := new(MockPromoService)
	promoSvc.On("ValidateCode", mock.Anything, "GOOD").
		Return(model.AppliedPromo{Code: "GOOD", Type: model.PromoTypePercent, Value: 10}, nil)
	promoSvc.On("ValidateCode", mock.Anything, "EXPIRED").
		Return(model.AppliedPromo{}, &service.RemoteError{StatusCode: 422, Message: "code expired"})

	uc := newTestUsecase(new(MockCartService), promoSvc, new(MockOrderService))

	_, err := uc.ApplyPromo(context.Background(), "GOOD")
	require.NoError(t, err)

	snap, err := uc.ApplyPromo(context.Background(), "EXPIRED")
	requireKind(t, err, KindRemote)
	require.NotNil(t, snap.AppliedPromo)
	assert.Equal(t, "GOOD", snap.AppliedPromo.Code)
	assert.Equal(t, "code expired", snap.Error)
}

// Test: 解除はネットワークなし
func TestClearPromoIsLocal(t *testing.T) {
	promoSvc := new(MockPromoService)
	promoSvc.On("ValidateCode", mock.Anything, "GOOD").
		Return(model.AppliedPromo{Code: "GOOD", Type: model.PromoTypePercent, Value: 10}, nil)

	uc := newTestUsecase(new(MockCartService), promoSvc, new(MockOrderService))
	_, err := uc.ApplyPromo(context.Background(), "GOOD")
	require.NoError(t, err)

	snap := uc.ClearPromo()
	assert.Nil(t, snap.AppliedPromo)
	promoSvc.AssertNumberOfCalls(t, "ValidateCode", 1)
}
