package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"chatline/internal/middleware"
	"chatline/internal/models"
	"chatline/internal/store"
)

type ChatHandler struct {
	Store store.Store
}

type createChatRequest struct {
	Name        string   `json:"name"`
	IsGroupChat bool     `json:"is_group_chat"`
	UserIDs     []string `json:"user_ids"`
}

func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if len(req.UserIDs) == 0 {
		respondError(w, http.StatusBadRequest, "chat needs participants")
		return
	}

	// The requester is always a participant; drop duplicate ids from the
	// request so they don't trip the participants primary key.
	seen := map[string]bool{userID: true}
	participants := []string{userID}
	for _, id := range req.UserIDs {
		if !seen[id] {
			seen[id] = true
			participants = append(participants, id)
		}
	}

	chat, err := h.Store.CreateChat(req.Name, req.IsGroupChat, participants)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, chat)
}

func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.Store.GetUserChats(middleware.UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if chats == nil {
		chats = []models.Chat{}
	}
	respondJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	if !h.requireParticipant(w, chatID, middleware.UserID(r)) {
		return
	}

	messages, err := h.Store.GetChatMessages(chatID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	respondJSON(w, http.StatusOK, messages)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]
	userID := middleware.UserID(r)

	if !h.requireParticipant(w, chatID, userID) {
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	msg, err := h.Store.SaveMessage(chatID, userID, req.Content)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) requireParticipant(w http.ResponseWriter, chatID, userID string) bool {
	ok, err := h.Store.IsParticipant(chatID, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	if !ok {
		respondError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
