package controllers

import (
	"net/http"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/api/validators"
	"github.com/shiprakart/seller-backend/internal/identity"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// Login handles phone/OTP authentication.
func Login(svc identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, seller, err := svc.LoginWithOTP(r.Context(), payload.PhoneNumber, payload.OTP)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusOK, map[string]any{
			"token":  token,
			"seller": seller,
		})
	}
}

// LoginEmail handles email/password authentication.
func LoginEmail(svc identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginEmailRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, seller, err := svc.LoginWithEmail(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusOK, map[string]any{
			"token":  token,
			"seller": seller,
		})
	}
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
}

type loginEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
