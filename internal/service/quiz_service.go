package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"learning-service/internal/llm"
	"learning-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrQuizNotFound = errors.New("quiz not found")

const (
	quizListLimit = 100
	xpPerCorrect  = 10
)

// The scorer's stores are narrow interfaces so the submit flow can be
// exercised against in-memory fakes; repository.* satisfies them.
type QuizStore interface {
	FindByIDForUser(ctx context.Context, id, userID string) (*models.Quiz, error)
	FindByUser(ctx context.Context, userID string, limit int64) ([]models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	MarkCompleted(ctx context.Context, id string, score int) error
}

type ProgressStore interface {
	Create(ctx context.Context, entry *models.Progress) error
}

type XPStore interface {
	IncrementXP(ctx context.Context, id string, amount int) error
}

type QuizService struct {
	Quizzes  QuizStore
	Progress ProgressStore
	Users    XPStore
	LLM      *llm.Client
}

func NewQuizService(quizzes QuizStore, progress ProgressStore, users XPStore, llmClient *llm.Client) *QuizService {
	return &QuizService{
		Quizzes:  quizzes,
		Progress: progress,
		Users:    users,
		LLM:      llmClient,
	}
}

type SubmitResult struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
	XPGained   int `json:"xp_gained"`
}

// Generate asks the LLM for a question set and persists it unscored.
func (s *QuizService) Generate(ctx context.Context, userID, topic string, numQuestions int) (*models.Quiz, error) {
	if numQuestions <= 0 {
		numQuestions = 5
	}

	systemPrompt := "You are a quiz generator. Create educational MCQ questions in JSON format."
	userPrompt := fmt.Sprintf(
		"Generate %d multiple-choice questions about '%s'. Return ONLY a JSON array with this exact format: "+
			`[{"question": "text", "options": ["A", "B", "C", "D"], "correct": 0}]. No other text.`,
		numQuestions, topic,
	)

	reply, err := s.LLM.Chat(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	raw, err := llm.ExtractJSONArray(reply)
	if err != nil {
		return nil, err
	}
	var questions []models.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %v", err)
	}

	quiz := &models.Quiz{
		ID:        uuid.NewString(),
		UserID:    userID,
		Topic:     topic,
		Questions: questions,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Submit grades the answers against the stored question set, marks the quiz
// completed, appends a progress entry and awards XP.
//
// The three writes are sequential document-store calls, not a transaction. A
// failure after the quiz update leaves progress recorded or XP un-awarded;
// that window is accepted and surfaced to the caller as a plain error.
// Nothing prevents re-submitting an already-completed quiz.
func (s *QuizService) Submit(ctx context.Context, userID, quizID string, answers []int) (*SubmitResult, error) {
	quiz, err := s.Quizzes.FindByIDForUser(ctx, quizID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	correct := gradeAnswers(quiz.Questions, answers)
	pct := percentage(correct, len(quiz.Questions))

	if err := s.Quizzes.MarkCompleted(ctx, quiz.ID, correct); err != nil {
		return nil, err
	}

	entry := &models.Progress{
		ID:        uuid.NewString(),
		UserID:    userID,
		Subject:   quiz.Topic,
		Topic:     quiz.Topic,
		Score:     pct,
		Completed: true,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Progress.Create(ctx, entry); err != nil {
		return nil, err
	}

	xpGained := correct * xpPerCorrect
	if err := s.Users.IncrementXP(ctx, userID, xpGained); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Score:      correct,
		Total:      len(quiz.Questions),
		Percentage: pct,
		XPGained:   xpGained,
	}, nil
}

func (s *QuizService) List(ctx context.Context, userID string) ([]models.Quiz, error) {
	quizzes, err := s.Quizzes.FindByUser(ctx, userID, quizListLimit)
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	return quizzes, nil
}

// gradeAnswers counts exact index matches over the submitted prefix. Answers
// beyond the question set are ignored.
func gradeAnswers(questions []models.Question, answers []int) int {
	correct := 0
	for i, ans := range answers {
		if i >= len(questions) {
			break
		}
		if ans == questions[i].Correct {
			correct++
		}
	}
	return correct
}

// percentage rounds to the nearest integer. Aggregate averages elsewhere
// truncate instead; the asymmetry is part of the observable contract.
func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
