package controllers

import (
	"strconv"
	"strings"

	"gettrendy/models"
	"gettrendy/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{}

// @Summary Get all categories
// @Description Get paginated list of categories
// @Tags Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /category [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	ctx := c.Request.Context()

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch categories", "error": err.Error()})
		return
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, name, COALESCE(image, ''), COALESCE(description, ''), created_at, updated_at
		 FROM categories ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch categories", "error": err.Error()})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Image, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch categories", "error": err.Error()})
			return
		}
		categories = append(categories, cat)
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cat models.Category
	err := models.DB.QueryRow(c.Request.Context(),
		`SELECT id, name, COALESCE(image, ''), COALESCE(description, ''), created_at, updated_at
		 FROM categories WHERE id = $1`,
		id).Scan(&cat.ID, &cat.Name, &cat.Image, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category retrieved", "data": cat})
}

// @Summary Create category
// @Description Create new category with an image (Admin)
// @Tags Categories
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Param description formData string false "Category description"
// @Param image formData file true "Category image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /category [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))

	if name == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	if _, err := c.FormFile("image"); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image is required"})
		return
	}

	image, err := saveProductImage(c, "categories")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	var cat models.Category
	err = models.DB.QueryRow(c.Request.Context(),
		`INSERT INTO categories (name, image, description, created_at, updated_at)
		 VALUES ($1,$2,$3,NOW(),NOW())
		 RETURNING id, created_at, updated_at`,
		name, image, description).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category", "error": err.Error()})
		return
	}

	cat.Name = name
	cat.Image = image
	cat.Description = description

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": cat})
}

// @Summary Update category
// @Description Partially update a category (Admin)
// @Tags Categories
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Category ID"
// @Param name formData string false "Category name"
// @Param description formData string false "Category description"
// @Param image formData file false "Category image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ctx := c.Request.Context()

	var cat models.Category
	err := models.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(image, ''), COALESCE(description, '')
		 FROM categories WHERE id = $1`,
		id).Scan(&cat.ID, &cat.Name, &cat.Image, &cat.Description)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		cat.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		cat.Description = description
	}
	oldImage := cat.Image
	if _, err := c.FormFile("image"); err == nil {
		image, err := saveProductImage(c, "categories")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		cat.Image = image
	}

	err = models.DB.QueryRow(ctx,
		`UPDATE categories SET name=$1, image=$2, description=$3, updated_at=NOW()
		 WHERE id=$4 RETURNING updated_at`,
		cat.Name, cat.Image, cat.Description, id).Scan(&cat.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category", "error": err.Error()})
		return
	}

	if cat.Image != oldImage {
		utils.DeleteFile(oldImage)
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully", "data": cat})
}

// @Summary Delete category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ctx := c.Request.Context()

	var image string
	if err := models.DB.QueryRow(ctx, "SELECT COALESCE(image, '') FROM categories WHERE id = $1", id).Scan(&image); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	if _, err := models.DB.Exec(ctx, "DELETE FROM categories WHERE id = $1", id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category", "error": err.Error()})
		return
	}

	utils.DeleteFile(image)

	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}
