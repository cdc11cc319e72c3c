package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/strandvakten/ansokan/authenticator"
	"github.com/strandvakten/ansokan/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Application *ApplicationController
	Auth        *AuthController
	AdminLog    *AdminLogController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, auth *authenticator.Authenticator) *Controllers {
	return &Controllers{
		Application: NewApplicationController(services),
		Auth:        NewAuthController(auth),
		AdminLog:    NewAdminLogController(services),
	}
}

// respondJSON writes payload as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
