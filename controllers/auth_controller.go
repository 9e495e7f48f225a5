package controllers

import (
	"strconv"

	"gettrendy/models"
	"gettrendy/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

// @Summary Register user
// @Description Register a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "User data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields are required", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var existing int
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", req.Email).Scan(&existing)
	if existing > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to register user", "error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	var user models.User
	err = models.DB.QueryRow(ctx,
		`INSERT INTO users (name, email, password, phone, role, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		 RETURNING id, created_at, updated_at`,
		req.Name, req.Email, hashed, req.Phone, role).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to register user", "error": err.Error()})
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Role = role

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    gin.H{"user": user, "token": token},
	})
}

// @Summary Login
// @Description Authenticate and get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email and password are required", "error": err.Error()})
		return
	}

	var user models.User
	var hashed string
	err := models.DB.QueryRow(c.Request.Context(),
		`SELECT id, name, email, password, COALESCE(phone, ''), role, created_at, updated_at
		 FROM users WHERE email = $1`,
		req.Email).Scan(&user.ID, &user.Name, &user.Email, &hashed, &user.Phone, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	ok, err := utils.VerifyPassword(hashed, req.Password)
	if err != nil || !ok {
		c.JSON(400, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    gin.H{"user": user, "token": token},
	})
}

// @Summary Get all users
// @Description Get paginated list of users (Admin)
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /auth [get]
func (ctrl *AuthController) GetAllUsers(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	ctx := c.Request.Context()

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch users", "error": err.Error()})
		return
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), role, created_at, updated_at
		 FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch users", "error": err.Error()})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch users", "error": err.Error()})
			return
		}
		users = append(users, u)
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Users retrieved",
		Data:    users,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// @Summary Get user by ID
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/{id} [get]
func (ctrl *AuthController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var u models.User
	err := models.DB.QueryRow(c.Request.Context(),
		`SELECT id, name, email, COALESCE(phone, ''), role, created_at, updated_at
		 FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User retrieved", "data": u})
}

// @Summary Update user
// @Description Partially update a user profile
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "User data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/{id} [put]
func (ctrl *AuthController) UpdateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var u models.User
	err := models.DB.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), role FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" && req.Email != u.Email {
		var taken int
		models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email = $1 AND id <> $2", req.Email, id).Scan(&taken)
		if taken > 0 {
			c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		u.Email = req.Email
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Role != "" {
		u.Role = req.Role
	}

	err = models.DB.QueryRow(ctx,
		`UPDATE users SET name=$1, email=$2, phone=$3, role=$4, updated_at=NOW()
		 WHERE id=$5 RETURNING created_at, updated_at`,
		u.Name, u.Email, u.Phone, u.Role, id).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update user", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User updated successfully", "data": u})
}

// @Summary Delete user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/delete/{id} [post]
func (ctrl *AuthController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result, err := models.DB.Exec(c.Request.Context(), "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete user", "error": err.Error()})
		return
	}
	if result.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User deleted successfully"})
}
