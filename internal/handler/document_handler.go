// Package handler holds the admin HTTP handlers.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docflow/internal/domain"
	"docflow/internal/port"
)

// DocumentHandler handles document lookup endpoints.
type DocumentHandler struct {
	store port.DocumentStore
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(store port.DocumentStore) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// GetByID handles GET /documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	record, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetByKey handles GET /documents/by-key/*key, resolving a source object key
// to its derived document identifier first.
func (h *DocumentHandler) GetByKey(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	docID := domain.DocumentID(key)

	record, err := h.store.Get(c.Request.Context(), docID)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found", "documentId": docID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
