package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harivola/medbot-api/internal/models"
	"github.com/harivola/medbot-api/internal/repository"
)

type CreatePatientRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListPatients returns every stored patient.
func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.Patients.List(c.Request.Context())
	if err != nil {
		log.Printf("ListPatients: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patients"})
		return
	}

	c.JSON(http.StatusOK, patients)
}

// CreatePatient stores a new patient record. Unlike capsules there are no
// merge semantics; every POST inserts a fresh document.
func (h *Handler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient id and name are required"})
		return
	}

	patient := models.Patient{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.Patients.Create(c.Request.Context(), &patient); err != nil {
		log.Printf("CreatePatient: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save patient"})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatient looks a patient up by its business id.
func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.Patients.FindByBusinessID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	if err != nil {
		log.Printf("GetPatient: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient removes a patient by its business id.
func (h *Handler) DeletePatient(c *gin.Context) {
	err := h.Patients.DeleteByBusinessID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	if err != nil {
		log.Printf("DeletePatient: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
