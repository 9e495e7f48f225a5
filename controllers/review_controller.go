package controllers

import (
	"strconv"

	"gettrendy/models"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{}

// @Summary Add review
// @Description Submit a review for a product
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body models.CreateReviewRequest true "Review data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /review/add [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields are required", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var productExists int
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE id = $1", req.ProductID).Scan(&productExists)
	if productExists == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var review models.Review
	err := models.DB.QueryRow(ctx,
		`INSERT INTO reviews (product_id, name, email, rating, review, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		 RETURNING id, created_at, updated_at`,
		req.ProductID, req.Name, req.Email, req.Rating, req.Review).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create review", "error": err.Error()})
		return
	}

	review.ProductID = req.ProductID
	review.Name = req.Name
	review.Email = req.Email
	review.Rating = req.Rating
	review.Review = req.Review

	c.JSON(201, gin.H{"success": true, "message": "Review added successfully", "data": review})
}

// @Summary Get product reviews
// @Description Get all reviews of a product, newest first
// @Tags Reviews
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /review/reviews/{productId} [get]
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	rows, err := models.DB.Query(c.Request.Context(),
		`SELECT id, product_id, name, email, rating, review, created_at, updated_at
		 FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`,
		productID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch reviews", "error": err.Error()})
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Name, &r.Email, &r.Rating, &r.Review, &r.CreatedAt, &r.UpdatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch reviews", "error": err.Error()})
			return
		}
		reviews = append(reviews, r)
	}

	c.JSON(200, gin.H{"success": true, "message": "Reviews retrieved", "data": reviews})
}

// @Summary Get all reviews
// @Description Get paginated list of all reviews (Admin)
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /review/getAllReview [get]
func (ctrl *ReviewController) GetAllReviews(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	ctx := c.Request.Context()

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM reviews").Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch reviews", "error": err.Error()})
		return
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, product_id, name, email, rating, review, created_at, updated_at
		 FROM reviews ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch reviews", "error": err.Error()})
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Name, &r.Email, &r.Rating, &r.Review, &r.CreatedAt, &r.UpdatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch reviews", "error": err.Error()})
			return
		}
		reviews = append(reviews, r)
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Reviews retrieved",
		Data:    reviews,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// @Summary Update review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body models.UpdateReviewRequest true "Review data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /review/review/{id} [put]
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var r models.Review
	err := models.DB.QueryRow(ctx,
		`SELECT id, product_id, name, email, rating, review FROM reviews WHERE id = $1`,
		id).Scan(&r.ID, &r.ProductID, &r.Name, &r.Email, &r.Rating, &r.Review)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Review not found"})
		return
	}

	if req.Name != "" {
		r.Name = req.Name
	}
	if req.Email != "" {
		r.Email = req.Email
	}
	if req.Rating != 0 {
		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(400, gin.H{"success": false, "message": "Rating must be between 1 and 5"})
			return
		}
		r.Rating = req.Rating
	}
	if req.Review != "" {
		r.Review = req.Review
	}

	err = models.DB.QueryRow(ctx,
		`UPDATE reviews SET name=$1, email=$2, rating=$3, review=$4, updated_at=NOW()
		 WHERE id=$5 RETURNING created_at, updated_at`,
		r.Name, r.Email, r.Rating, r.Review, id).Scan(&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update review", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Review updated successfully", "data": r})
}

// @Summary Delete review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /review/review/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result, err := models.DB.Exec(c.Request.Context(), "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete review", "error": err.Error()})
		return
	}
	if result.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Review not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Review deleted successfully"})
}
