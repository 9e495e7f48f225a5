package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

func totalPages(totalItems, limit int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}
