package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

// JSON sends a success payload as-is. The frontend consumes bare arrays and
// objects, so there is no envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error converts any error into the flat {"error": message} contract.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
