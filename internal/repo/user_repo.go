package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/models"
)

type UserRepo interface {
	List(ctx context.Context) ([]models.User, error)
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u models.User) (models.InsertAck, error)
	PromoteAdmin(ctx context.Context, id string) (models.UpdateAck, error)
	Delete(ctx context.Context, id string) (models.DeleteAck, error)
}

type userRepoMongo struct{ d *mongo.Database }

func NewUserRepoMongo(d *mongo.Database) UserRepo { return &userRepoMongo{d: d} }

func (r *userRepoMongo) col() *mongo.Collection { return r.d.Collection("users") }

func (r *userRepoMongo) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepoMongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepoMongo) Insert(ctx context.Context, u models.User) (models.InsertAck, error) {
	res, err := r.col().InsertOne(ctx, u)
	if err != nil {
		return models.InsertAck{}, err
	}
	return models.InsertAck{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (r *userRepoMongo) PromoteAdmin(ctx context.Context, id string) (models.UpdateAck, error) {
	oid, err := parseOID(id)
	if err != nil {
		return models.UpdateAck{}, err
	}
	res, err := r.col().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return models.UpdateAck{}, err
	}
	return models.UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *userRepoMongo) Delete(ctx context.Context, id string) (models.DeleteAck, error) {
	oid, err := parseOID(id)
	if err != nil {
		return models.DeleteAck{}, err
	}
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteAck{}, err
	}
	return models.DeleteAck{DeletedCount: res.DeletedCount}, nil
}
