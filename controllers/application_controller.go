package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/strandvakten/ansokan/models"
	"github.com/strandvakten/ansokan/repositories"
	"github.com/strandvakten/ansokan/services"
	"github.com/strandvakten/ansokan/userctx"
)

// ApplicationController handles application submission and admin review requests
type ApplicationController struct {
	services *services.Services
}

// NewApplicationController creates a new application controller
func NewApplicationController(services *services.Services) *ApplicationController {
	return &ApplicationController{services: services}
}

// Apply handles POST /api/apply
func (c *ApplicationController) Apply(w http.ResponseWriter, r *http.Request) {
	form, err := decodeApplicationForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Ogiltig förfrågan.")
		return
	}

	app, err := c.services.Application.Submit(r.Context(), form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(w, http.StatusBadRequest, "Obligatoriska fält saknas.")
			return
		}
		log.Printf("Failed to save application: %v", err)
		respondError(w, http.StatusInternalServerError, "Kunde inte spara ansökan.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": app.ID})
}

// List handles GET /api/applications
func (c *ApplicationController) List(w http.ResponseWriter, r *http.Request) {
	apps, err := c.services.Application.List(r.Context())
	if err != nil {
		log.Printf("Failed to list applications: %v", err)
		respondError(w, http.StatusInternalServerError, "Kunde inte hämta data.")
		return
	}

	if apps == nil {
		apps = []models.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

// UpdateStatus handles PATCH /api/applications/{id}/status
func (c *ApplicationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Ogiltigt id.")
		return
	}

	var body struct {
		Status string `json:"status"`
		Actor  string `json:"actor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Ogiltig förfrågan.")
		return
	}

	status := models.Status(strings.TrimSpace(body.Status))
	if !status.IsValid() {
		respondError(w, http.StatusBadRequest, "Ogiltig status.")
		return
	}

	app, err := c.services.Application.UpdateStatus(r.Context(), id, status, actorName(r, body.Actor))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Hittade ingen ansökan med det ID:t.")
			return
		}
		log.Printf("Failed to update application status: %v", err)
		respondError(w, http.StatusInternalServerError, "Kunde inte uppdatera status.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": app.ID, "status": app.Status})
}

// Delete handles DELETE /api/applications/{id}
func (c *ApplicationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Ogiltigt id.")
		return
	}

	// The delete request may carry an optional actor in its body.
	var body struct {
		Actor string `json:"actor"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&body)
	}

	if err := c.services.Application.Delete(r.Context(), id, actorName(r, body.Actor)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Hittade ingen ansökan med det ID:t.")
			return
		}
		log.Printf("Failed to delete application: %v", err)
		respondError(w, http.StatusInternalServerError, "Kunde inte radera ansökan.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

// actorName resolves the actor attributed to an admin action: the
// self-reported name from the request body wins, then the authenticated
// username from the token, then a fallback.
func actorName(r *http.Request, bodyActor string) string {
	if actor := strings.TrimSpace(bodyActor); actor != "" {
		return actor
	}
	if name := userctx.AdminName(r.Context()); name != "" {
		return name
	}
	return "okänd admin"
}

// decodeApplicationForm reads a submission from either a JSON or a
// url-encoded form body.
func decodeApplicationForm(r *http.Request) (*models.ApplicationForm, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return &models.ApplicationForm{
			Name:       r.FormValue("name"),
			Email:      r.FormValue("email"),
			Phone:      r.FormValue("phone"),
			Address:    r.FormValue("address"),
			Swimming:   r.FormValue("swimming"),
			Experience: r.FormValue("experience"),
			Rescue:     r.FormValue("rescue"),
			Message:    r.FormValue("message"),
		}, nil
	}

	var form models.ApplicationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return nil, err
	}
	return &form, nil
}
