package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Pic       string    `json:"pic,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Chat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	IsGroupChat bool      `json:"is_group_chat"`
	UserIDs     []string  `json:"user_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Message struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chat_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
