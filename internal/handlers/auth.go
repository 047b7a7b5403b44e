package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatline/internal/account"
	"chatline/internal/middleware"
	"chatline/internal/models"
)

type AuthHandler struct {
	Accounts *account.Service
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var params account.RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	user, token, err := h.Accounts.Register(params)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrValidation),
			errors.Is(err, account.ErrDuplicateEmail),
			errors.Is(err, account.ErrCredential):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"msg":     "Successfully Registered",
		"newUser": user,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	user, token, err := h.Accounts.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"msg":       "Login Successful",
		"userExist": user,
		"token":     token,
	})
}

// SearchUsers lists every user other than the requester, filtered by the
// optional ?search= keyword.
func (h *AuthHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserID(r)
	keyword := r.URL.Query().Get("search")

	users, err := h.Accounts.Search(keyword, requesterID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}
