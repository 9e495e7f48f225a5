package controllers

import (
	"errors"
	"strconv"

	"gettrendy/models"
	"gettrendy/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// @Summary Add item to cart
// @Description Add a product in a selected size to the user's cart; an existing line for the same product and size has its quantity incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Cart item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields are required", "error": err.Error()})
		return
	}

	items, err := ctrl.service.AddItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrInvalidSize):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to add item to cart", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": items})
}

// @Summary Get cart items
// @Description Get the user's cart items with product detail, paginated in memory
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{userId} [get]
func (ctrl *CartController) GetCartItems(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid user ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	cartPage, err := ctrl.service.ListItems(c.Request.Context(), userID, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch cart", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success":      true,
		"message":      "Cart items retrieved",
		"items":        cartPage.Items,
		"total_items":  cartPage.TotalItems,
		"total_pages":  cartPage.TotalPages,
		"current_page": cartPage.CurrentPage,
	})
}

// @Summary Remove item from cart
// @Description Remove every size variant of a product from the user's cart
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{userId}/{productId} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid user ID"})
		return
	}
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	items, err := ctrl.service.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove item from cart", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": items})
}

// @Summary Update cart item quantity
// @Description Set the quantity on the first cart line matching the product, regardless of size
// @Tags Cart
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param productId path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{userId}/{productId} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid user ID"})
		return
	}
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1", "error": err.Error()})
		return
	}

	items, err := ctrl.service.UpdateItem(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1"})
		case errors.Is(err, services.ErrCartItemNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Cart or product not found"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update cart item", "error": err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart item updated successfully", "data": items})
}
