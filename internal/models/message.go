package models

import "time"

// Message is directional and append-only. Unlike Connection the pair is
// not canonicalized for storage; thread queries normalize with an
// OR-predicate instead.
type Message struct {
	MessageID     uint64    `gorm:"column:message_id;primaryKey;autoIncrement" json:"message_id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	ContentSentAt time.Time `gorm:"column:content_sent_at;index" json:"content_sent_at"`
	SenderID      uint64    `gorm:"column:sender_id;index;not null" json:"sender_id"`
	ReceiverID    uint64    `gorm:"column:receiver_id;index;not null" json:"receiver_id"`
}

func (Message) TableName() string { return "messages" }

// Conversation is one entry of the conversation list: a counterpart and
// the most recent message exchanged with them.
type Conversation struct {
	UserID      uint64 `gorm:"column:user_id" json:"user_id"`
	Name        string `gorm:"column:name" json:"name"`
	LastMessage string `gorm:"column:last_message" json:"last_message"`
}
