package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the identity entity, persisted 1:1 in the users collection.
// Username is unique (index created at bootstrap).
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username      string             `bson:"username" json:"username"`
	FavoriteGenre string             `bson:"favorite_genre" json:"favorite_genre"`

	// Never expose in JSON
	PasswordHash string `bson:"password_hash" json:"-"`
}
