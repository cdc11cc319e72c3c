package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/strandvakten/ansokan/authenticator"
)

// AuthController handles admin login requests
type AuthController struct {
	auth *authenticator.Authenticator
}

// NewAuthController creates a new auth controller
func NewAuthController(auth *authenticator.Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

// Login handles POST /api/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusUnauthorized, "Fel inloggning.")
		return
	}

	token, err := c.auth.Login(body.Username, body.Password)
	if err != nil {
		if !errors.Is(err, authenticator.ErrBadCredentials) {
			log.Printf("Failed to issue token: %v", err)
		}
		respondError(w, http.StatusUnauthorized, "Fel inloggning.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
