package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ChatRepository struct {
	Col *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{Col: db.Collection("chat_history")}
}

func (r *ChatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	_, err := r.Col.InsertOne(ctx, msg)
	return err
}
