package controllers

import (
	"log"
	"net/http"

	"github.com/strandvakten/ansokan/services"
)

// AdminLogController serves the admin action log
type AdminLogController struct {
	services *services.Services
}

// NewAdminLogController creates a new admin log controller
func NewAdminLogController(services *services.Services) *AdminLogController {
	return &AdminLogController{services: services}
}

// Index handles GET /api/admin-logs
func (c *AdminLogController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.AdminLog.Recent(r.Context())
	if err != nil {
		log.Printf("Failed to fetch admin logs: %v", err)
		respondError(w, http.StatusInternalServerError, "Kunde inte hämta loggar.")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
