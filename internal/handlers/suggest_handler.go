package handlers

import (
	"errors"
	"log"
	"net/http"

	"flower_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type SuggestHandler struct {
	suggestService services.SuggestService
}

func NewSuggestHandler(suggestService services.SuggestService) *SuggestHandler {
	return &SuggestHandler{suggestService: suggestService}
}

// SuggestAddress proxies address autocompletion for the checkout form.
func (h *SuggestHandler) SuggestAddress(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must be at least 3 characters"})
		return
	}

	suggestions, err := h.suggestService.Suggest(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSuggestNotConfigured):
			log.Println("DADATA_API_KEY is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DaData API key is not configured"})
		case errors.Is(err, services.ErrSuggestTimeout):
			log.Printf("DaData API timeout for query: %s", query)
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "DaData API timeout"})
		case errors.Is(err, services.ErrSuggestUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "DaData API error"})
		default:
			log.Printf("DaData request failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		}
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
