package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Patient struct {
	ObjectID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"id" json:"id"` // business key, client-supplied
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
}
