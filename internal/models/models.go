package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}

// Store acknowledgments mirror the driver's mutation results with stable JSON keys.

type InsertAck struct {
	InsertedID string `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}
