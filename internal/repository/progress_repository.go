package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.Progress, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	return entries, nil
}

// Create appends an entry. Progress documents are never updated or deleted.
func (r *ProgressRepository) Create(ctx context.Context, entry *models.Progress) error {
	_, err := r.Col.InsertOne(ctx, entry)
	return err
}
