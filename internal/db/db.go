package db

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Connect opens a client against uri and verifies the server is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := mc.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return mc, nil
}

// SeedAdmin upserts a user with the admin role so that admin-gated routes are
// reachable on a fresh database. No-op when the pair is incomplete.
func SeedAdmin(ctx context.Context, d *mongo.Database, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = d.Collection("users").UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"email": email, "password_hash": hash, "role": "admin", "created_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}
