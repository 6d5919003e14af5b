package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/api/middleware"
	"hostelhub/backend/internal/models"
)

type commentRequest struct {
	Message string `json:"message"`
}

// AddComment appends a message to a complaint's thread. The complaint's
// existence is not checked up front; an orphaned reference is rejected
// by the foreign key and surfaces as a storage failure.
func (h *Handler) AddComment(c *gin.Context) {
	claims := middleware.Identity(c)

	complaintID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid complaint id"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "JSON body required"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	comment := &models.Comment{
		ComplaintID: uint(complaintID),
		UserID:      claims.UserID,
		Message:     req.Message,
	}
	if err := h.Storage.CreateComment(comment); err != nil {
		h.fail(c, "add comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment added"})
}

// ListComments returns the complaint's thread, oldest first, each entry
// joined with its author's name and role. Any authenticated user may
// read any thread.
func (h *Handler) ListComments(c *gin.Context) {
	complaintID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid complaint id"})
		return
	}

	thread, err := h.Storage.GetCommentThread(uint(complaintID))
	if err != nil {
		h.fail(c, "list comments", err)
		return
	}
	c.JSON(http.StatusOK, thread)
}
