package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
)

// BookingRepo provides booking persistence.
type BookingRepo interface {
	Create(ctx context.Context, b dom.Booking) (dom.Booking, error)
	ListAll(ctx context.Context) ([]dom.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]dom.Booking, error)
	Delete(ctx context.Context, ticketID string) error
}

// MongoBookingRepo implements BookingRepo on the "bookings" collection.
type MongoBookingRepo struct {
	col *mongo.Collection
}

// NewMongoBookingRepo returns a new MongoBookingRepo.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{col: db.Collection("bookings")}
}

// Create inserts a new booking and returns it with the store-assigned ticket ID.
func (r *MongoBookingRepo) Create(ctx context.Context, b dom.Booking) (dom.Booking, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return dom.Booking{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.TicketID = id
	}
	return b, nil
}

// ListAll returns every booking in the collection.
func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]dom.Booking, error) {
	return r.list(ctx, bson.M{})
}

// ListByUser returns all bookings whose user_id matches. The result may be empty.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]dom.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]dom.Booking, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []dom.Booking
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the booking with the given ticket ID.
// Returns mongo.ErrNoDocuments when nothing matched; a ticket ID that is not
// valid ObjectID hex matches nothing.
func (r *MongoBookingRepo) Delete(ctx context.Context, ticketID string) error {
	oid, err := primitive.ObjectIDFromHex(ticketID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
