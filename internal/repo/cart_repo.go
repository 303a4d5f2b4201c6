package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/models"
)

// Cart documents are whatever the client submits, so the repo works on raw
// bson maps rather than a fixed struct.
type CartRepo interface {
	List(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, item map[string]interface{}) (models.InsertAck, error)
	Delete(ctx context.Context, id string) (models.DeleteAck, error)
}

type cartRepoMongo struct{ d *mongo.Database }

func NewCartRepoMongo(d *mongo.Database) CartRepo { return &cartRepoMongo{d: d} }

func (r *cartRepoMongo) col() *mongo.Collection { return r.d.Collection("carts") }

func (r *cartRepoMongo) List(ctx context.Context) ([]bson.M, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []bson.M
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepoMongo) Insert(ctx context.Context, item map[string]interface{}) (models.InsertAck, error) {
	res, err := r.col().InsertOne(ctx, bson.M(item))
	if err != nil {
		return models.InsertAck{}, err
	}
	return models.InsertAck{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (r *cartRepoMongo) Delete(ctx context.Context, id string) (models.DeleteAck, error) {
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
