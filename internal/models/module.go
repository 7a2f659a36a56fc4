package models

type LearningModule struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subject       string `json:"subject"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime string `json:"estimatedTime"`
}
