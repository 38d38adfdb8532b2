package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a ticket reservation in the "bookings" collection.
// TicketID is assigned by the store on insert. UserID is a plain string
// reference to a User; it is not checked against the users collection,
// so dangling references are possible.
type Booking struct {
	TicketID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	CustomerName     string             `bson:"customer_name"`
	CustomerMobileNo string             `bson:"customer_mobileNo"`
	NumberOfTickets  int                `bson:"number_of_tickets"`
}
