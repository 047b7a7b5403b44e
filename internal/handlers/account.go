package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"chatline/internal/account"
)

type AccountHandler struct {
	Accounts *account.Service
	Log      *slog.Logger
}

// DeleteAccount removes the user and cascades through their direct chats and
// messages. Internal failures are logged but reported generically.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	if err := h.Accounts.Delete(userID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found with this ID - "+userID)
			return
		}
		h.Log.Error("account deletion failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "User and associated chats/messages deleted successfully",
	})
}
