package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/problem"
	"github.com/abhisek/mathstudio/internal/store"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "success", Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "created", Data: data})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{Code: code, Message: message})
}

func badRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

// fail maps err to a status: invalid input is 400, a missing record 404,
// anything else a logged 500.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, problem.ErrInvalidInput):
		badRequest(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		errorResponse(c, http.StatusNotFound, "resource not found")
	default:
		s.logger.Error("internal server error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
