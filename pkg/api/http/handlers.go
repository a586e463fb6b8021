package http

import (
	"errors"
	"net/http"

	"github.com/aescanero/happy-number/internal/application/happy"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	welcomeMessage     = "Welcome to the Happy Number API!"
	usageHint          = "GET /is_happy/<positive_integer>"
	notPositiveMessage = "Number must be a positive integer."
)

// IndexResponse describes the service
type IndexResponse struct {
	Message string `json:"message"`
	Usage   string `json:"usage"`
}

// HealthResponse represents a liveness response
type HealthResponse struct {
	Status string `json:"status"`
}

// HappyResponse represents the result of a check
type HappyResponse struct {
	Number  int64 `json:"number"`
	IsHappy bool  `json:"is_happy"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleIndex handles service discovery requests
func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Message: welcomeMessage,
		Usage:   usageHint,
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleIsHappy handles happy number checks.
// integerParam has already parsed the path segment.
func (s *Server) handleIsHappy(c *gin.Context) {
	number := c.GetInt64(numberKey)

	result, err := s.checker.Check(number)
	if err != nil {
		if errors.Is(err, happy.ErrNotPositive) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: notPositiveMessage})
			return
		}
		s.logger.Error("check failed", zap.Int64("number", number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	s.logger.Info("checked number",
		zap.Int64("number", result.Number),
		zap.Bool("is_happy", result.IsHappy))

	c.JSON(http.StatusOK, HappyResponse{
		Number:  result.Number,
		IsHappy: result.IsHappy,
	})
}

// handleNotFound answers unknown routes and malformed route parameters
func handleNotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// handleMethodNotAllowed answers known paths requested with another method
func handleMethodNotAllowed(c *gin.Context) {
	c.AbortWithStatus(http.StatusMethodNotAllowed)
}
