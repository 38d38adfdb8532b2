package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record in the "users" collection.
// PasswordHash is a bcrypt digest; the plaintext is never stored.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
}
