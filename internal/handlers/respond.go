package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"flower_shop/internal/repository"

	"github.com/gin-gonic/gin"
)

// respondError maps the repository taxonomy to HTTP outcomes. Anything that
// is not a NotFound becomes a generic failure with a short message; internal
// detail never leaks to the client.
func respondError(c *gin.Context, err error, notFoundMessage, failureMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
