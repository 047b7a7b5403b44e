package store

import (
	"errors"

	"chatline/internal/models"
)

// Sentinel errors returned by Store implementations. Callers match with
// errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	SearchUsers(keyword, excludeID string) ([]models.User, error)
	DeleteUser(id string) error

	// Chat operations
	CreateChat(name string, isGroup bool, participantIDs []string) (*models.Chat, error)
	GetUserChats(userID string) ([]models.Chat, error)
	DirectChatsForUser(userID string) ([]models.Chat, error)
	IsParticipant(chatID, userID string) (bool, error)
	SaveMessage(chatID, senderID, content string) (*models.Message, error)
	GetChatMessages(chatID string) ([]models.Message, error)
	DeleteChatMessages(chatID string) (int64, error)
	DeleteChats(ids []string) (int64, error)
}
