package orders

import (
	"context"
	"net/http"

	"artmarket/internal/api/httpx"
	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"
	"artmarket/internal/domain/orders"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Orders *orders.Service
}

type directOrderRequest struct {
	ArtworkID  uint             `json:"artwork_id" binding:"required"`
	Price      *decimal.Decimal `json:"price"`
	CustomNote *string          `json:"custom_note"`
}

type customOrderRequest struct {
	ArtworkID  uint             `json:"artwork_id" binding:"required"`
	Price      *decimal.Decimal `json:"price"`
	CustomNote string           `json:"custom_note"`
}

type bidRequest struct {
	ArtworkID uint             `json:"artwork_id" binding:"required"`
	Amount    *decimal.Decimal `json:"amount"`
}

type highestBidResponse struct {
	HighestBid decimal.NullDecimal `json:"highest_bid"`
}

// POST /api/orders/order
func (h *Handler) PlaceOrder(c *gin.Context) {
	var input directOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.WriteError(c, apperr.Validation("invalid request body"))
		return
	}

	order, err := h.Orders.PlaceDirectOrder(c.Request.Context(), httpx.PrincipalFrom(c), orders.DirectOrderInput{
		ArtworkID:  input.ArtworkID,
		Price:      input.Price,
		CustomNote: input.CustomNote,
	})
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// POST /api/orders/custom
func (h *Handler) PlaceCustomOrder(c *gin.Context) {
	var input customOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.WriteError(c, apperr.Validation("invalid request body"))
		return
	}
	if input.Price == nil {
		httpx.WriteError(c, apperr.Validation("price is required"))
		return
	}

	order, err := h.Orders.PlaceCustomOrder(c.Request.Context(), httpx.PrincipalFrom(c), orders.CustomOrderInput{
		ArtworkID: input.ArtworkID,
		Price:     *input.Price,
		Note:      input.CustomNote,
	})
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Custom order placed successfully", "order": order})
}

// POST /api/orders/bid
func (h *Handler) PlaceBid(c *gin.Context) {
	var input bidRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.WriteError(c, apperr.Validation("invalid request body"))
		return
	}
	if input.Amount == nil {
		httpx.WriteError(c, apperr.Validation("amount is required"))
		return
	}

	bid, err := h.Orders.PlaceBid(c.Request.Context(), httpx.PrincipalFrom(c), input.ArtworkID, *input.Amount)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Bid placed successfully", "bid": bid})
}

// GET /api/orders/highest/:artwork_id
func (h *Handler) HighestBid(c *gin.Context) {
	id, err := httpx.UintParam(c, "artwork_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	highest, err := h.Orders.GetHighestBid(c.Request.Context(), id)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, highestBidResponse{HighestBid: highest})
}

// GET /api/orders/artist-orders
func (h *Handler) ArtistOrders(c *gin.Context) {
	p := httpx.PrincipalFrom(c)
	list, err := h.Orders.ListArtistOrders(c.Request.Context(), p, p.ID())
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/orders/:id/accept
func (h *Handler) AcceptOrder(c *gin.Context) {
	h.decide(c, h.Orders.AcceptOrder)
}

// POST /api/orders/:id/reject
func (h *Handler) RejectOrder(c *gin.Context) {
	h.decide(c, h.Orders.RejectOrder)
}

type decision = func(ctx context.Context, p access.Principal, orderID uint) (orders.Order, error)

func (h *Handler) decide(c *gin.Context, fn decision) {
	id, err := httpx.UintParam(c, "id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	order, err := fn(c.Request.Context(), httpx.PrincipalFrom(c), id)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
