package repo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks a path parameter that is not a valid ObjectID hex string.
// Handlers map it to a 400 instead of letting the driver reject the query.
var ErrInvalidID = errors.New("invalid document id")

func parseOID(hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, ErrInvalidID
	}
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func insertedHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
