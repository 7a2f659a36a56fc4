package service

import (
	"context"
	"fmt"
	"time"

	"learning-service/internal/llm"
	"learning-service/internal/models"
	"learning-service/internal/repository"

	"github.com/google/uuid"
)

type ChatService struct {
	Chats *repository.ChatRepository
	LLM   *llm.Client
}

func NewChatService(chats *repository.ChatRepository, llmClient *llm.Client) *ChatService {
	return &ChatService{Chats: chats, LLM: llmClient}
}

// Lesson generates a tutor-style explanation of a topic in the requested
// language. Nothing is persisted.
func (s *ChatService) Lesson(ctx context.Context, topic, language string) (string, error) {
	systemPrompt := fmt.Sprintf(
		"You are an expert educational tutor. Explain topics clearly in %s with examples and diagrams. Use simple language for rural students.",
		language,
	)
	userPrompt := fmt.Sprintf(
		"Teach me about '%s' in %s. Include: 1) Simple explanation 2) Real-world examples 3) Key points to remember. Make it engaging for rural students.",
		topic, language,
	)
	return s.LLM.Chat(ctx, systemPrompt, userPrompt)
}

// Chat answers a free-form question and records the exchange in the user's
// chat history.
func (s *ChatService) Chat(ctx context.Context, userID, message, language string) (string, error) {
	systemPrompt := fmt.Sprintf(
		"You are a friendly AI learning assistant speaking in %s. Help students understand concepts, answer questions, and encourage learning. Be supportive and clear.",
		language,
	)

	reply, err := s.LLM.Chat(ctx, systemPrompt, message)
	if err != nil {
		return "", err
	}

	msg := &models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Response:  reply,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Chats.Create(ctx, msg); err != nil {
		return "", err
	}

	return reply, nil
}
