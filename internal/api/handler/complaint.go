package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/api/middleware"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/upload"
)

// CreateComplaint files a new complaint for the authenticated user.
// The request is a multipart form so an image can ride along; the
// stored row references the saved file by name only. Ownership comes
// from the verified token, never from the client body.
func (h *Handler) CreateComplaint(c *gin.Context) {
	claims := middleware.Identity(c)

	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")

	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required"})
		return
	}

	var image *string
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			h.fail(c, "open upload", err)
			return
		}
		stored, err := h.Uploads.Save(src, file.Filename)
		src.Close()
		switch {
		case errors.Is(err, upload.ErrUnsafeName):
			// Nothing usable left of the name; the complaint is
			// stored without an image, as the original did.
		case err != nil:
			h.fail(c, "save upload", err)
			return
		default:
			image = &stored
		}
	}

	var cat *string
	if category != "" {
		cat = &category
	}

	complaint := &models.Complaint{
		UserID:      claims.UserID,
		Title:       title,
		Description: description,
		Category:    cat,
		Image:       image,
	}
	if err := h.Storage.CreateComplaint(complaint); err != nil {
		h.fail(c, "create complaint", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint created", "complaintId": complaint.ID})
}

// ListMyComplaints returns the caller's own complaints, newest first.
func (h *Handler) ListMyComplaints(c *gin.Context) {
	claims := middleware.Identity(c)

	complaints, err := h.Storage.GetComplaintsByUser(claims.UserID)
	if err != nil {
		h.fail(c, "list my complaints", err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// ServeImage returns raw image bytes from the blob area by exact
// filename. There is deliberately no ownership check; anyone who knows
// a stored name can fetch it, matching the original contract.
func (h *Handler) ServeImage(c *gin.Context) {
	path, err := h.Uploads.Path(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid filename"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
		return
	}
	c.File(path)
}
