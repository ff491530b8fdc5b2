package handler

import (
	"github.com/gin-gonic/gin"

	"record-management-api/internal/store"
)

type Handler struct {
	store store.Store
}

func New(st store.Store) *Handler {
	return &Handler{store: st}
}

// error bodies use the {"detail": ...} shape the frontend expects
func detail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"detail": msg})
}
