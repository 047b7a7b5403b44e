package sqlstore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"chatline/internal/models"
)

func (s *SQLStore) CreateChat(name string, isGroup bool, participantIDs []string) (*models.Chat, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("chat needs at least one participant")
	}

	chat := &models.Chat{
		ID:          uuid.NewString(),
		Name:        name,
		IsGroupChat: isGroup,
		UserIDs:     participantIDs,
	}

	query := s.rebind("INSERT INTO chats (id, name, is_group_chat) VALUES (?, ?, ?)")
	if _, err := s.db.Exec(query, chat.ID, chat.Name, chat.IsGroupChat); err != nil {
		return nil, err
	}

	query = s.rebind("INSERT INTO chat_participants (chat_id, user_id) VALUES (?, ?)")
	for _, userID := range participantIDs {
		if _, err := s.db.Exec(query, chat.ID, userID); err != nil {
			return nil, err
		}
	}
	return chat, nil
}

func (s *SQLStore) GetUserChats(userID string) ([]models.Chat, error) {
	query := s.rebind(`
		SELECT c.id, c.name, c.is_group_chat, c.created_at
		FROM chats c
		JOIN chat_participants p ON c.id = p.chat_id
		WHERE p.user_id = ?
	`)
	return s.queryChats(query, userID)
}

// DirectChatsForUser returns only the non-group chats userID participates in.
func (s *SQLStore) DirectChatsForUser(userID string) ([]models.Chat, error) {
	query := s.rebind(`
		SELECT c.id, c.name, c.is_group_chat, c.created_at
		FROM chats c
		JOIN chat_participants p ON c.id = p.chat_id
		WHERE p.user_id = ? AND NOT c.is_group_chat
	`)
	return s.queryChats(query, userID)
}

func (s *SQLStore) queryChats(query string, args ...any) ([]models.Chat, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(&chat.ID, &chat.Name, &chat.IsGroupChat, &chat.CreatedAt); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (s *SQLStore) IsParticipant(chatID, userID string) (bool, error) {
	var exists bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM chat_participants WHERE chat_id = ? AND user_id = ?)")
	err := s.db.QueryRow(query, chatID, userID).Scan(&exists)
	return exists, err
}

func (s *SQLStore) SaveMessage(chatID, senderID, content string) (*models.Message, error) {
	msg := &models.Message{
		ID:       uuid.NewString(),
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
	}
	query := s.rebind("INSERT INTO messages (id, chat_id, sender_id, content) VALUES (?, ?, ?, ?)")
	if _, err := s.db.Exec(query, msg.ID, msg.ChatID, msg.SenderID, msg.Content); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *SQLStore) GetChatMessages(chatID string) ([]models.Message, error) {
	// LEFT JOIN keeps messages visible after their sender's account is gone.
	query := s.rebind(`
		SELECT m.id, m.chat_id, m.sender_id, COALESCE(u.name, ''), m.content, m.created_at
		FROM messages m
		LEFT JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id = ?
		ORDER BY m.created_at ASC
	`)
	rows, err := s.db.Query(query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.SenderName, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *SQLStore) DeleteChatMessages(chatID string) (int64, error) {
	query := s.rebind("DELETE FROM messages WHERE chat_id = ?")
	result, err := s.db.Exec(query, chatID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteChats removes the chats and their participant rows. Messages are
// expected to be deleted first.
func (s *SQLStore) DeleteChats(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?, ", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := s.rebind("DELETE FROM chat_participants WHERE chat_id IN (" + placeholders + ")")
	if _, err := s.db.Exec(query, args...); err != nil {
		return 0, err
	}

	query = s.rebind("DELETE FROM chats WHERE id IN (" + placeholders + ")")
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
