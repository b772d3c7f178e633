package handlers

import (
	"net/http"

	"restaurant_storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu returns the reconciled menu: every fixed catalog item with
// whatever price/availability the backend currently has for it.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	items := h.menuService.GetMenu(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.menuService.FindItem(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}
