package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/models"
)

// Reviews are read-only through the API; no mutation methods exist.
type ReviewRepo interface {
	List(ctx context.Context) ([]models.Review, error)
}

type reviewRepoMongo struct{ d *mongo.Database }

func NewReviewRepoMongo(d *mongo.Database) ReviewRepo { return &reviewRepoMongo{d: d} }

func (r *reviewRepoMongo) List(ctx context.Context) ([]models.Review, error) {
	cur, err := r.d.Collection("reviews").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
