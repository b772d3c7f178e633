package handlers

import (
	"net/http"

	"restaurant_storefront/internal/cart"
	"restaurant_storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts       cart.Persistence
	menuService services.MenuService
	checkout    services.CheckoutService
}

func NewCartHandler(carts cart.Persistence, menuService services.MenuService, checkout services.CheckoutService) *CartHandler {
	return &CartHandler{carts: carts, menuService: menuService, checkout: checkout}
}

// rejectDuringCheckout blocks cart mutations while a checkout attempt is
// in flight, so the order created from the cart matches what gets
// cleared afterwards.
func (h *CartHandler) rejectDuringCheckout(c *gin.Context, cartID string) bool {
	if h.checkout.Status(cartID) != services.StatusIdle {
		c.JSON(http.StatusConflict, gin.H{"error": "Cart is locked while a checkout is in progress"})
		return true
	}
	return false
}

func (h *CartHandler) GetCart(c *gin.Context) {
	store := cart.NewStore(c.Param("cart_id"), h.carts)
	c.JSON(http.StatusOK, gin.H{
		"items": store.Lines(),
		"total": store.Total(),
		"count": store.Count(),
	})
}

// AddItem puts a menu item in the cart. The item's display fields and
// price are snapshotted from the reconciled menu at this moment.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.FindItem(c.Request.Context(), req.ItemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusConflict, gin.H{"error": "This item is currently unavailable"})
		return
	}

	cartID := c.Param("cart_id")
	if h.rejectDuringCheckout(c, cartID) {
		return
	}

	store := cart.NewStore(cartID, h.carts)
	if err := store.AddItem(*item, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": store.Lines(),
		"total": store.Total(),
		"count": store.Count(),
	})
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cartID := c.Param("cart_id")
	if h.rejectDuringCheckout(c, cartID) {
		return
	}

	store := cart.NewStore(cartID, h.carts)
	if err := store.SetQuantity(c.Param("item_id"), req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": store.Lines(),
		"total": store.Total(),
		"count": store.Count(),
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	if h.rejectDuringCheckout(c, cartID) {
		return
	}

	store := cart.NewStore(cartID, h.carts)
	if err := store.RemoveItem(c.Param("item_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": store.Lines(),
		"total": store.Total(),
		"count": store.Count(),
	})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID := c.Param("cart_id")
	if h.rejectDuringCheckout(c, cartID) {
		return
	}

	store := cart.NewStore(cartID, h.carts)
	if err := store.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
