package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/models"
)

type statusRequest struct {
	Status string `json:"status"`
}

// ListAllComplaints returns every complaint across all users, newest
// first. Admin only.
func (h *Handler) ListAllComplaints(c *gin.Context) {
	complaints, err := h.Storage.GetAllComplaints()
	if err != nil {
		h.fail(c, "list all complaints", err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// UpdateStatus moves a complaint to a new lifecycle status. The update
// is unconditional by id: a missing id affects no rows yet still
// reports success, matching the original contract.
func (h *Handler) UpdateStatus(c *gin.Context) {
	complaintID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid complaint id"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "JSON body required"})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	if err := h.Storage.UpdateComplaintStatus(uint(complaintID), req.Status); err != nil {
		h.fail(c, "update status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// AnalyticsSummary aggregates complaint counts by status and category.
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	byStatus, err := h.Storage.CountComplaintsByStatus()
	if err != nil {
		h.fail(c, "count by status", err)
		return
	}

	byCategory, err := h.Storage.CountComplaintsByCategory()
	if err != nil {
		h.fail(c, "count by category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"byStatus": byStatus, "byCategory": byCategory})
}
