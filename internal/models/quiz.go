package models

import "time"

type Question struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Correct  int      `bson:"correct" json:"correct"`
}

// Quiz is created with a nil Score when generated and scored at most once
// afterwards; nothing in the store enforces the single-scoring, see the
// submit flow in service.QuizService.
type Quiz struct {
	ID        string     `bson:"_id" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Topic     string     `bson:"topic" json:"topic"`
	Questions []Question `bson:"questions" json:"questions"`
	Score     *int       `bson:"score" json:"score"`
	Completed bool       `bson:"completed" json:"completed"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}
