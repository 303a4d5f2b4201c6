package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/models"
)

type MenuRepo interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	// FindByID returns (nil, nil) when no item matches; absence is not an error.
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	Insert(ctx context.Context, m models.MenuItem) (models.InsertAck, error)
	Update(ctx context.Context, id string, m models.MenuItem) (models.UpdateAck, error)
	Delete(ctx context.Context, id string) (models.DeleteAck, error)
}

type menuRepoMongo struct{ d *mongo.Database }

func NewMenuRepoMongo(d *mongo.Database) MenuRepo { return &menuRepoMongo{d: d} }

func (r *menuRepoMongo) col() *mongo.Collection { return r.d.Collection("menu") }

func (r *menuRepoMongo) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.MenuItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *menuRepoMongo) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := parseOID(id)
	if err != nil {
		return nil, err
	}
	var m models.MenuItem
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepoMongo) Insert(ctx context.Context, m models.MenuItem) (models.InsertAck, error) {
	res, err := r.col().InsertOne(ctx, m)
	if err != nil {
		return models.InsertAck{}, err
	}
	return models.InsertAck{InsertedID: insertedHex(res.InsertedID)}, nil
}

// Update overwrites the editable fields only; any other fields on the stored
// document are left untouched.
func (r *menuRepoMongo) Update(ctx context.Context, id string, m models.MenuItem) (models.UpdateAck, error) {
	oid, err := parseOID(id)
	if err != nil {
		return models.UpdateAck{}, err
	}
	res, err := r.col().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":     m.Name,
		"recipe":   m.Recipe,
		"category": m.Category,
		"price":    m.Price,
	}})
	if err != nil {
		return models.UpdateAck{}, err
	}
	return models.UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *menuRepoMongo) Delete(ctx context.Context, id string) (models.DeleteAck, error) {
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
