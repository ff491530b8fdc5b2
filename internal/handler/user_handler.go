package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"record-management-api/internal/auth"
	"record-management-api/internal/store"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (h *Handler) Register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		detail(c, http.StatusBadRequest, "Username and password required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}

	if _, err := h.store.CreateUser(c.Request.Context(), req.Username, hash); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			detail(c, http.StatusBadRequest, "Username already exists")
			return
		}
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		detail(c, http.StatusBadRequest, "Username and password required")
		return
	}

	// unknown user and wrong password look the same to the caller
	u, err := h.store.UserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user_id": u.ID})
}

// ListUsers projects to (id, username); the password hash never leaves the
// store layer.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}
	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{ID: u.ID, Username: u.Username})
	}
	c.JSON(http.StatusOK, out)
}
