package controllers

import (
	"errors"
	"strconv"

	"gettrendy/models"
	"gettrendy/repositories"
	"gettrendy/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	service *services.CheckoutService
	repo    *repositories.CheckoutRepository
}

func NewCheckoutController(service *services.CheckoutService, repo *repositories.CheckoutRepository) *CheckoutController {
	return &CheckoutController{service: service, repo: repo}
}

// @Summary Create checkout
// @Description Snapshot the user's cart into an order; UPI creates a Razorpay order and keeps the cart, cash on delivery clears it immediately
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed", "error": err.Error()})
		return
	}

	message := "Checkout successful without payment"
	if result.Order != nil {
		message = "Checkout successful. Proceed to payment"
	}

	c.JSON(201, gin.H{"success": true, "message": message, "data": result})
}

// @Summary Payment success callback
// @Description Mark a checkout as paid by its gateway order id and clear the owning user's cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.PaymentSuccessRequest true "Gateway identifiers"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/payment-success [post]
func (ctrl *CheckoutController) PaymentSuccess(c *gin.Context) {
	var req models.PaymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	checkout, err := ctrl.service.ConfirmPayment(c.Request.Context(), req.RazorpayOrderID, req.RazorpayPaymentID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to confirm payment", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment successful and cart cleared", "data": checkout})
}

// @Summary Get user checkouts
// @Description Get every checkout placed by a user with product detail
// @Tags Checkout
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.Response
// @Router /checkout/{userId} [get]
func (ctrl *CheckoutController) GetUserCheckouts(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid user ID"})
		return
	}

	checkouts, err := ctrl.repo.FindByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get checkout details", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Checkouts retrieved", "data": checkouts})
}

// @Summary Get all checkouts
// @Description Get all checkouts with user and product references expanded (Admin)
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /checkout [get]
func (ctrl *CheckoutController) GetAllCheckouts(c *gin.Context) {
	page, limit, _ := getPaginationParams(c, 10)

	checkouts, total, err := ctrl.repo.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch all checkouts", "error": err.Error()})
		return
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Checkouts retrieved",
		Data:    checkouts,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// @Summary Update checkout status
// @Description Overwrite the checkout status (Admin); no transition graph is enforced
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param checkoutId path int true "Checkout ID"
// @Param request body models.UpdateCheckoutStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/{checkoutId} [put]
func (ctrl *CheckoutController) UpdateCheckoutStatus(c *gin.Context) {
	checkoutID, err := strconv.Atoi(c.Param("checkoutId"))
	if err != nil || checkoutID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid checkout ID"})
		return
	}

	var req models.UpdateCheckoutStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid status", "error": err.Error()})
		return
	}

	updated, err := ctrl.repo.UpdateStatus(c.Request.Context(), checkoutID, req.Status)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update status", "error": err.Error()})
		return
	}
	if !updated {
		c.JSON(404, gin.H{"success": false, "message": "Checkout not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Checkout status updated", "data": gin.H{
		"id":     checkoutID,
		"status": req.Status,
	}})
}

// @Summary Delete checkout
// @Description Delete a checkout and its snapshot items (Admin)
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param checkoutId path int true "Checkout ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /checkout/{checkoutId} [delete]
func (ctrl *CheckoutController) DeleteCheckout(c *gin.Context) {
	checkoutID, err := strconv.Atoi(c.Param("checkoutId"))
	if err != nil || checkoutID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid checkout ID"})
		return
	}

	deleted, err := ctrl.repo.Delete(c.Request.Context(), checkoutID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete checkout", "error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(404, gin.H{"success": false, "message": "Checkout not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Checkout deleted successfully"})
}
