package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.store.ListPlans(c.Request.Context())
	if err != nil {
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// BuyPlan acknowledges unconditionally. The id is logged but never checked
// against the store; the upstream contract has no failure mode here.
func (h *Handler) BuyPlan(c *gin.Context) {
	var req struct {
		PlanID int64 `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&req); err == nil && req.PlanID != 0 {
		log.Printf("plan purchase requested: plan_id=%d", req.PlanID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan purchased successfully"})
}
