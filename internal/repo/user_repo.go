package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
}

// MongoUserRepo implements UserRepo on the "users" collection.
type MongoUserRepo struct {
	col *mongo.Collection
}

// NewMongoUserRepo returns a new MongoUserRepo.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection("users")}
}

// GetByEmail returns the user with the given email.
// Returns mongo.ErrNoDocuments if no such user exists.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, err
}

// Create inserts a new user and returns it with the store-assigned ID.
func (r *MongoUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return dom.User{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return u, nil
}
