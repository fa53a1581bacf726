package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	sessions *usecase.Sessions
}

// DI
func NewCartHandler(sessions *usecase.Sessions) *CartHandler {
	return &CartHandler{sessions: sessions}
}

type UpdateQtyRequest struct {
	Quantity int64 `json:"quantity"`
}

type RemoveItemsRequest struct {
	ProductIDs []string `json:"product_ids"`
}

type SetShippingRequest struct {
	Option string `json:"option"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

type CheckoutResponse struct {
	OrderID string               `json:"order_id"`
	Cart    usecase.CartSnapshot `json:"cart"`
}

// /cart 配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.getCart)
	g.POST("/reload", h.reload)
	g.PATCH("/items/:productId", h.updateQty)
	g.POST("/items/remove", h.removeItems)
	g.POST("/items/:productId/toggle", h.toggleSelect)
	g.POST("/selection/all", h.selectAll)
	g.DELETE("/selection", h.clearSelected)
	g.PUT("/shipping", h.setShipping)
	g.POST("/promo", h.applyPromo)
	g.DELETE("/promo", h.clearPromo)
	g.POST("/checkout", h.checkout)
}

func (h *CartHandler) cart(c echo.Context) (*usecase.CartUsecase, bool) {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return nil, false
	}
	return h.sessions.Get(sid), true
}

// 現在のスナップショット。外部呼び出しはしない。
func (h *CartHandler) getCart(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, uc.Snapshot())
}

func (h *CartHandler) reload(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	snap, err := uc.Load(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) updateQty(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req UpdateQtyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, err := uc.UpdateQty(c.Request().Context(), c.Param("productId"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) removeItems(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req RemoveItemsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, err := uc.RemoveItems(c.Request().Context(), req.ProductIDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) toggleSelect(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, uc.ToggleSelect(c.Param("productId")))
}

func (h *CartHandler) selectAll(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, uc.SelectAll())
}

func (h *CartHandler) clearSelected(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, uc.ClearSelected())
}

func (h *CartHandler) setShipping(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req SetShippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, err := uc.SetShipping(req.Option)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *CartHandler) applyPromo(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ApplyPromoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, err := uc.ApplyPromo(c.Request().Context(), req.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// 解除はローカルのみ
func (h *CartHandler) clearPromo(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, uc.ClearPromo())
}

func (h *CartHandler) checkout(c echo.Context) error {
	uc, ok := h.cart(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var addr model.Address
	if err := c.Bind(&addr); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	result, snap, err := uc.Checkout(c.Request().Context(), addr)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, CheckoutResponse{OrderID: result.OrderID, Cart: snap})
}
