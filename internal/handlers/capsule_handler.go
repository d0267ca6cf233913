package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harivola/medbot-api/internal/models"
	"github.com/harivola/medbot-api/internal/repository"
)

// ListCapsules returns every stored capsule. No ordering is guaranteed.
func (h *Handler) ListCapsules(c *gin.Context) {
	capsules, err := h.Capsules.List(c.Request.Context())
	if err != nil {
		log.Printf("ListCapsules: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve capsules"})
		return
	}

	c.JSON(http.StatusOK, capsules)
}

// GetCapsule looks a capsule up by its business id.
func (h *Handler) GetCapsule(c *gin.Context) {
	capsule, err := h.Capsules.FindByBusinessID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Capsule not found"})
		return
	}
	if err != nil {
		log.Printf("GetCapsule: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve capsule"})
		return
	}

	c.JSON(http.StatusOK, capsule)
}

// UpsertCapsule creates or updates the capsule named by the body's "id"
// field. On update the body's fields are merged over the stored document,
// leaving untouched keys in place. Answers 201 on create, 200 on update.
func (h *Handler) UpsertCapsule(c *gin.Context) {
	var body models.Capsule
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, ok := body.BusinessID()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capsule id is required"})
		return
	}
	// Store the normalized id so GET /api/capsules/:id finds the document
	// whether the client posted the id as a string or a number.
	body["id"] = id

	stored, created, err := h.Capsules.Upsert(c.Request.Context(), id, body)
	if err != nil {
		log.Printf("UpsertCapsule: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save capsule"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, stored)
}
