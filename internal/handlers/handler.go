package handlers

import (
	"github.com/harivola/medbot-api/internal/repository"
	"github.com/harivola/medbot-api/internal/utils"
)

// Handler bundles the dependencies the HTTP endpoints need. All endpoints are
// methods of this struct.
type Handler struct {
	Users    repository.UserRepository
	Capsules repository.CapsuleRepository
	Patients repository.PatientRepository
	Tokens   *utils.JWTManager
}

func NewHandler(users repository.UserRepository, capsules repository.CapsuleRepository, patients repository.PatientRepository, tokens *utils.JWTManager) *Handler {
	return &Handler{
		Users:    users,
		Capsules: capsules,
		Patients: patients,
		Tokens:   tokens,
	}
}
