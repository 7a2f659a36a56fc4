package models

import "time"

// Progress is append-only: one entry per scored quiz or manually logged
// activity. Score is a percentage in [0,100], not a raw correct count.
type Progress struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Subject   string    `bson:"subject" json:"subject"`
	Topic     string    `bson:"topic" json:"topic"`
	Score     int       `bson:"score" json:"score"`
	Completed bool      `bson:"completed" json:"completed"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type DayScore struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type ProgressStats struct {
	TotalCompleted int            `json:"total_completed"`
	AverageScore   int            `json:"average_score"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	WeeklyProgress []DayScore     `json:"weekly_progress"`
	SubjectScores  map[string]int `json:"subject_scores"`
}
