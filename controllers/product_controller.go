package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gettrendy/config"
	"gettrendy/libs"
	"gettrendy/models"
	"gettrendy/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct{}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

func loadProductSizes(ctx context.Context, productID int) ([]models.ProductSize, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT size, stock FROM product_sizes WHERE product_id = $1 ORDER BY id", productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := []models.ProductSize{}
	for rows.Next() {
		var s models.ProductSize
		if err := rows.Scan(&s.Size, &s.Stock); err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

func parseSizes(raw string) ([]models.ProductSize, error) {
	var sizes []models.ProductSize
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
		return nil, fmt.Errorf("invalid sizes format")
	}
	for _, s := range sizes {
		if !models.IsValidSize(s.Size) {
			return nil, fmt.Errorf("invalid size: %s", s.Size)
		}
		if s.Stock < 0 {
			return nil, fmt.Errorf("stock must not be negative")
		}
	}
	return sizes, nil
}

// saveProductImage stores the uploaded image locally and, when
// Cloudinary is configured, moves it off-box and returns the remote URL.
func saveProductImage(c *gin.Context, subDir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	imageURL, err := utils.UploadFile(c, file, subDir)
	if err != nil {
		return "", err
	}

	if libs.CloudinaryEnabled() {
		localPath := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(imageURL, "/uploads/"))
		remoteURL, err := libs.UploadToCloudinary(localPath, subDir)
		if err != nil {
			return "", err
		}
		return remoteURL, nil
	}

	return imageURL, nil
}

// @Summary Get all products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	cacheKey := getProductCacheKey(page, limit)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
		return
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, name, price, category_id, COALESCE(description, ''), COALESCE(image, ''), created_at, updated_at
		 FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
			return
		}
		products = append(products, p)
	}
	rows.Close()

	for i := range products {
		sizes, err := loadProductSizes(ctx, products[i].ID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
			return
		}
		products[i].Sizes = sizes
	}

	response := models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get product details with its category populated
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ctx := c.Request.Context()

	var p models.Product
	var cat models.Category
	err := models.DB.QueryRow(ctx,
		`SELECT p.id, p.name, p.price, p.category_id, COALESCE(p.description, ''), COALESCE(p.image, ''),
		        p.created_at, p.updated_at,
		        c.id, c.name, c.image, c.description, c.created_at, c.updated_at
		 FROM products p
		 JOIN categories c ON p.category_id = c.id
		 WHERE p.id = $1`,
		id).Scan(
		&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Description, &p.Image,
		&p.CreatedAt, &p.UpdatedAt,
		&cat.ID, &cat.Name, &cat.Image, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	p.Category = &cat

	sizes, err := loadProductSizes(ctx, p.ID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product", "error": err.Error()})
		return
	}
	p.Sizes = sizes

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": p})
}

// @Summary Get products by category
// @Description Get paginated products belonging to a category
// @Tags Products
// @Produce json
// @Param categoryId path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products/category/{categoryId} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil || categoryID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	page, limit, offset := getPaginationParams(c, 10)
	ctx := c.Request.Context()

	var total int
	if err := models.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE category_id = $1", categoryID).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
		return
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, name, price, category_id, COALESCE(description, ''), COALESCE(image, ''), created_at, updated_at
		 FROM products WHERE category_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		categoryID, limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
			return
		}
		products = append(products, p)
	}
	rows.Close()

	for i := range products {
		sizes, err := loadProductSizes(ctx, products[i].ID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
			return
		}
		products[i].Sizes = sizes
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// @Summary Create product
// @Description Create new product with an image and per-size stock (Admin)
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param price formData number true "Product price"
// @Param category_id formData int true "Category ID"
// @Param description formData string false "Product description"
// @Param sizes formData string false "Sizes as JSON array, e.g. [{\"size\":\"M\",\"stock\":10}]"
// @Param image formData file true "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	priceStr := c.PostForm("price")
	categoryIDStr := c.PostForm("category_id")
	description := strings.TrimSpace(c.PostForm("description"))
	sizesStr := c.PostForm("sizes")

	if name == "" || priceStr == "" || categoryIDStr == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, price, and category_id are required"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil || categoryID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	ctx := c.Request.Context()

	var categoryExists int
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM categories WHERE id = $1", categoryID).Scan(&categoryExists)
	if categoryExists == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	sizes := []models.ProductSize{}
	if sizesStr != "" {
		sizes, err = parseSizes(sizesStr)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	if _, err := c.FormFile("image"); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image is required"})
		return
	}

	image, err := saveProductImage(c, "products")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product", "error": err.Error()})
		return
	}
	defer tx.Rollback(ctx)

	var p models.Product
	err = tx.QueryRow(ctx,
		`INSERT INTO products (name, price, category_id, description, image, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		 RETURNING id, created_at, updated_at`,
		name, price, categoryID, description, image).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product", "error": err.Error()})
		return
	}

	for _, s := range sizes {
		if _, err := tx.Exec(ctx,
			"INSERT INTO product_sizes (product_id, size, stock) VALUES ($1,$2,$3)",
			p.ID, s.Size, s.Stock); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to create product sizes", "error": err.Error()})
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product", "error": err.Error()})
		return
	}

	p.Name = name
	p.Price = price
	p.CategoryID = categoryID
	p.Description = description
	p.Image = image
	p.Sizes = sizes

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": p})
}

// @Summary Update product
// @Description Partially update a product; sizes replace the existing set when provided (Admin)
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param name formData string false "Product name"
// @Param price formData number false "Product price"
// @Param category_id formData int false "Category ID"
// @Param description formData string false "Product description"
// @Param sizes formData string false "Sizes as JSON array"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ctx := c.Request.Context()

	var p models.Product
	err := models.DB.QueryRow(ctx,
		`SELECT id, name, price, category_id, COALESCE(description, ''), COALESCE(image, '')
		 FROM products WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Description, &p.Image)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		p.Name = name
	}
	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
			return
		}
		p.Price = price
	}
	if categoryIDStr := c.PostForm("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil || categoryID <= 0 {
			c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
			return
		}
		var categoryExists int
		models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM categories WHERE id = $1", categoryID).Scan(&categoryExists)
		if categoryExists == 0 {
			c.JSON(400, gin.H{"success": false, "message": "Category not found"})
			return
		}
		p.CategoryID = categoryID
	}
	if description := c.PostForm("description"); description != "" {
		p.Description = description
	}

	var sizes []models.ProductSize
	if sizesStr := c.PostForm("sizes"); sizesStr != "" {
		sizes, err = parseSizes(sizesStr)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	oldImage := p.Image
	if _, err := c.FormFile("image"); err == nil {
		image, err := saveProductImage(c, "products")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		p.Image = image
	}

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product", "error": err.Error()})
		return
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE products SET name=$1, price=$2, category_id=$3, description=$4, image=$5, updated_at=NOW()
		 WHERE id=$6`,
		p.Name, p.Price, p.CategoryID, p.Description, p.Image, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product", "error": err.Error()})
		return
	}

	if sizes != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM product_sizes WHERE product_id = $1", id); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to update product sizes", "error": err.Error()})
			return
		}
		for _, s := range sizes {
			if _, err := tx.Exec(ctx,
				"INSERT INTO product_sizes (product_id, size, stock) VALUES ($1,$2,$3)",
				id, s.Size, s.Stock); err != nil {
				c.JSON(500, gin.H{"success": false, "message": "Failed to update product sizes", "error": err.Error()})
				return
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product", "error": err.Error()})
		return
	}

	if p.Image != oldImage {
		utils.DeleteFile(oldImage)
	}

	if sizes == nil {
		sizes, _ = loadProductSizes(ctx, id)
	}
	p.Sizes = sizes

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": p})
}

// @Summary Delete product
// @Description Delete a product and its sizes (Admin)
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ctx := c.Request.Context()

	var image string
	err := models.DB.QueryRow(ctx, "SELECT COALESCE(image, '') FROM products WHERE id = $1", id).Scan(&image)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product", "error": err.Error()})
		return
	}
	defer tx.Rollback(ctx)

	_, _ = tx.Exec(ctx, "DELETE FROM product_sizes WHERE product_id = $1", id)

	if _, err := tx.Exec(ctx, "DELETE FROM products WHERE id = $1", id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product", "error": err.Error()})
		return
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product", "error": err.Error()})
		return
	}

	utils.DeleteFile(image)
	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully"})
}
