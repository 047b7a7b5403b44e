package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"chatline/internal/account"
	"chatline/internal/middleware"
	"chatline/internal/store"
)

// authedRequest builds a request carrying userID the way middleware.Auth
// would set it.
func authedRequest(t *testing.T, method, path string, body io.Reader, userID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func newDeleteRouter(handler *AccountHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/users/{id}", handler.DeleteAccount).Methods("DELETE")
	return r
}

func TestDeleteAccountHandler(t *testing.T) {
	accounts := newTestAccounts(t)
	handler := &AccountHandler{Accounts: accounts, Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	router := newDeleteRouter(handler)

	alice, _, _ := accounts.Register(account.RegisterParams{Name: "alice", Email: "alice@example.com", Password: "pass"})
	bob, _, _ := accounts.Register(account.RegisterParams{Name: "bob", Email: "bob@example.com", Password: "pass"})
	chat, _ := accounts.Store.CreateChat("", false, []string{alice.ID, bob.ID})
	accounts.Store.SaveMessage(chat.ID, alice.ID, "hi")

	req := authedRequest(t, "DELETE", "/api/users/"+alice.ID, nil, bob.ID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	if _, err := accounts.Store.GetUserByID(alice.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected user gone, got %v", err)
	}
	if messages, _ := accounts.Store.GetChatMessages(chat.ID); len(messages) != 0 {
		t.Error("Expected cascade to remove messages")
	}
}

func TestDeleteAccountHandlerNotFound(t *testing.T) {
	accounts := newTestAccounts(t)
	handler := &AccountHandler{Accounts: accounts, Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	router := newDeleteRouter(handler)

	req := authedRequest(t, "DELETE", "/api/users/no-such-id", nil, "whoever")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusNotFound)
	}
}
