package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
)

// uintParam parses a numeric path parameter, answering 400 itself on failure.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// respondEngineError maps the engine's error taxonomy onto HTTP statuses.
// Insufficient stock answers 409 with the full shortfall list.
func respondEngineError(c *gin.Context, err error) {
	var notFound *engine.NotFoundError
	var invalid *engine.InvalidInputError
	var short *engine.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.As(err, &short):
		c.JSON(http.StatusConflict, gin.H{"error": short.Error(), "shortfalls": short.Shortfalls})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
