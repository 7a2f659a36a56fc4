package models

import "time"

type ChatMessage struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Message   string    `bson:"message" json:"message"`
	Response  string    `bson:"response" json:"response"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
