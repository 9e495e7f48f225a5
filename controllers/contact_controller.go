package controllers

import (
	"strconv"

	"gettrendy/models"

	"github.com/gin-gonic/gin"
)

type ContactController struct{}

// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body models.CreateContactRequest true "Contact data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact/add [post]
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields are required", "error": err.Error()})
		return
	}

	var contact models.Contact
	err := models.DB.QueryRow(c.Request.Context(),
		`INSERT INTO contacts (name, email, subject, message, created_at)
		 VALUES ($1,$2,$3,$4,NOW())
		 RETURNING id, created_at`,
		req.Name, req.Email, req.Subject, req.Message).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to submit message", "error": err.Error()})
		return
	}

	contact.Name = req.Name
	contact.Email = req.Email
	contact.Subject = req.Subject
	contact.Message = req.Message

	c.JSON(201, gin.H{"success": true, "message": "Message submitted successfully", "data": contact})
}

// @Summary Get all contact messages
// @Description Get paginated contact messages (Admin)
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /contact/contacts [get]
func (ctrl *ContactController) GetAllContacts(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	ctx := c.Request.Context()

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM contacts").Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch messages", "error": err.Error()})
		return
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contacts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch messages", "error": err.Error()})
		return
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var ct models.Contact
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Subject, &ct.Message, &ct.CreatedAt); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch messages", "error": err.Error()})
			return
		}
		contacts = append(contacts, ct)
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Messages retrieved",
		Data:    contacts,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages(total, limit),
		},
	})
}

// @Summary Delete contact message
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /contact/{id} [delete]
func (ctrl *ContactController) DeleteContact(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result, err := models.DB.Exec(c.Request.Context(), "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete message", "error": err.Error()})
		return
	}
	if result.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Message not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Message deleted successfully"})
}
