package account

import (
	"errors"
	"fmt"
	"log/slog"

	"chatline/internal/auth"
	"chatline/internal/models"
	"chatline/internal/store"
)

// Service orchestrates the account lifecycle: registration, login, search
// and deletion with cascading cleanup of direct chats and their messages.
type Service struct {
	Store  store.Store
	Tokens *auth.Tokens
	Log    *slog.Logger
}

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Pic      string `json:"pic"`
}

func (s *Service) Register(params RegisterParams) (*models.User, string, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, "", ErrValidation
	}

	_, err := s.Store.GetUserByEmail(params.Email)
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}

	// Hash before any write so a hashing failure persists nothing.
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrCredential, err)
	}

	user := &models.User{
		Name:     params.Name,
		Email:    params.Email,
		Password: hash,
		Pic:      params.Pic,
	}
	if err := s.Store.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrCredential, err)
	}
	user.Password = ""
	return user, token, nil
}

// Login deliberately reports the same error for an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *Service) Login(email, password string) (*models.User, string, error) {
	user, err := s.Store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrCredential, err)
	}
	user.Password = ""
	return user, token, nil
}

func (s *Service) Search(keyword, requesterID string) ([]models.User, error) {
	return s.Store.SearchUsers(keyword, requesterID)
}

// Delete removes the user and cascades through their direct chats and the
// messages in those chats. The steps are not wrapped in a transaction: a
// failure partway leaves already-purged data gone and the rest in place, and
// the error is surfaced to the caller.
func (s *Service) Delete(userID string) error {
	if _, err := s.Store.GetUserByID(userID); err != nil {
		return err
	}

	chats, err := s.Store.DirectChatsForUser(userID)
	if err != nil {
		return fmt.Errorf("collect chats for user %s: %w", userID, err)
	}

	chatIDs := make([]string, 0, len(chats))
	for _, chat := range chats {
		if _, err := s.Store.DeleteChatMessages(chat.ID); err != nil {
			return fmt.Errorf("delete messages for chat %s: %w", chat.ID, err)
		}
		chatIDs = append(chatIDs, chat.ID)
	}

	if _, err := s.Store.DeleteChats(chatIDs); err != nil {
		return fmt.Errorf("delete chats for user %s: %w", userID, err)
	}

	if err := s.Store.DeleteUser(userID); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}

	s.Log.Info("account deleted", "user_id", userID, "chats", len(chatIDs))
	return nil
}
