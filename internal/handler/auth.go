// Package handler exposes HTTP handlers for the public browse API and the
// admin refresh API.  This file implements the token exchange: an operator
// presents the shared admin secret and receives a short-lived JWT that
// gates the refresh endpoints.
package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tedjkamau/BFI/internal/utils"
)

// AuthHandler issues admin access tokens.
type AuthHandler struct {
	JWTSecret    string // secret used to sign issued tokens
	AdminSecret  string // shared secret operators must present
	AccessTTLMin int    // token lifetime in minutes
}

// tokenRequest is the JSON body of POST /v1/auth/token.
type tokenRequest struct {
	Secret string `json:"secret"`
}

// IssueToken exchanges the admin secret for a signed access token.  The
// comparison is constant-time so response timing leaks nothing about the
// secret.  401 on mismatch, 400 on a malformed body.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil || req.Secret == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "secret required"})
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.AdminSecret)) != 1 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid secret"})
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, "admin", h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token signing failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}
