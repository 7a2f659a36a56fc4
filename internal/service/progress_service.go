package service

import (
	"context"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"github.com/google/uuid"
)

const progressFetchLimit = 1000

type ProgressService struct {
	Progress *repository.ProgressRepository
	Users    *repository.UserRepository
}

func NewProgressService(progress *repository.ProgressRepository, users *repository.UserRepository) *ProgressService {
	return &ProgressService{Progress: progress, Users: users}
}

// Stats derives the analytics summary from the caller's full history.
func (s *ProgressService) Stats(ctx context.Context, userID string) (*models.ProgressStats, error) {
	entries, err := s.Progress.FindByUser(ctx, userID, progressFetchLimit)
	if err != nil {
		return nil, err
	}
	return buildStats(entries, time.Now().UTC()), nil
}

// Add logs a manual activity. XP for manual entries is score/10, not the
// per-question award the quiz scorer uses.
func (s *ProgressService) Add(ctx context.Context, userID, subject, topic string, score int, completed bool) (int, error) {
	entry := &models.Progress{
		ID:        uuid.NewString(),
		UserID:    userID,
		Subject:   subject,
		Topic:     topic,
		Score:     score,
		Completed: completed,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Progress.Create(ctx, entry); err != nil {
		return 0, err
	}

	xpGained := score / 10
	if err := s.Users.IncrementXP(ctx, userID, xpGained); err != nil {
		return 0, err
	}
	return xpGained, nil
}

// buildStats is pure computation over already-fetched entries so it can be
// exercised without a database.
func buildStats(entries []models.Progress, now time.Time) *models.ProgressStats {
	stats := &models.ProgressStats{
		Strengths:      []string{},
		Weaknesses:     []string{},
		WeeklyProgress: weeklyProgress(entries, now),
		SubjectScores:  map[string]int{},
	}

	if len(entries) == 0 {
		return stats
	}

	sum := 0
	for _, p := range entries {
		if p.Completed {
			stats.TotalCompleted++
		}
		sum += p.Score
	}
	stats.AverageScore = int(float64(sum) / float64(len(entries)))

	// Group by subject, keeping first-seen order so the strength and
	// weakness lists are stable across requests.
	subjectSums := map[string]int{}
	subjectCounts := map[string]int{}
	var subjects []string
	for _, p := range entries {
		if _, seen := subjectCounts[p.Subject]; !seen {
			subjects = append(subjects, p.Subject)
		}
		subjectSums[p.Subject] += p.Score
		subjectCounts[p.Subject]++
	}

	for _, subject := range subjects {
		mean := float64(subjectSums[subject]) / float64(subjectCounts[subject])
		stats.SubjectScores[subject] = int(mean)
		if mean >= 70 {
			stats.Strengths = append(stats.Strengths, subject)
		} else {
			stats.Weaknesses = append(stats.Weaknesses, subject)
		}
	}

	return stats
}

// weeklyProgress buckets entries into the 7 UTC calendar days ending today,
// oldest first. Days without entries score zero. Always 7 buckets, history
// or not.
func weeklyProgress(entries []models.Progress, now time.Time) []models.DayScore {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	week := make([]models.DayScore, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		sum, count := 0, 0
		for _, p := range entries {
			ts := p.Timestamp.UTC()
			if !ts.Before(dayStart) && ts.Before(dayEnd) {
				sum += p.Score
				count++
			}
		}

		score := 0
		if count > 0 {
			score = int(float64(sum) / float64(count))
		}
		week = append(week, models.DayScore{
			Date:  dayStart.Format("Mon"),
			Score: score,
		})
	}
	return week
}
