package dto

// CreateBookingRequest is the JSON body for POST /api/bookings.
// The "id" field is the owning user's id; its existence is not checked.
type CreateBookingRequest struct {
	UserID           string `json:"id" binding:"required"`
	CustomerName     string `json:"customer_name" binding:"required"`
	CustomerMobileNo string `json:"customer_mobileNo" binding:"required"`
	NumberOfTickets  int    `json:"number_of_tickets" binding:"required"`
}

// BookingResponse is a single booking as returned by the list endpoints.
type BookingResponse struct {
	TicketID         string `json:"ticket_id"`
	UserID           string `json:"user_id"`
	CustomerName     string `json:"customer_name"`
	CustomerMobileNo string `json:"customer_mobileNo"`
	NumberOfTickets  int    `json:"number_of_tickets"`
}
