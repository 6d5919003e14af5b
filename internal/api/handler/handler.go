// Package handler implements the HTTP surface of the HostelHub
// backend. Handlers translate between the JSON/form contract and the
// storage layer; store failures are logged server-side and reported to
// clients as a generic message only.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hostelhub/backend/internal/auth"
	"hostelhub/backend/internal/storage"
	"hostelhub/backend/internal/upload"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	Storage storage.Storage
	Tokens  *auth.TokenService
	Uploads *upload.Store
	Log     *logrus.Logger
}

func NewHandler(s storage.Storage, tokens *auth.TokenService, uploads *upload.Store, log *logrus.Logger) *Handler {
	return &Handler{Storage: s, Tokens: tokens, Uploads: uploads, Log: log}
}

// Health reports that the service is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HostelHub backend running"})
}

// fail logs the underlying error with the request ID and answers with
// the generic storage failure message. Internal detail never reaches
// the client.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	h.Log.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"op":         op,
	}).WithError(err).Error("storage operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "DB error"})
}
