package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
	"github.com/surendhiran2000/theatre-management/internal/dto"
	"github.com/surendhiran2000/theatre-management/internal/service"
)

type memBookingRepo struct {
	bookings []dom.Booking
}

func (m *memBookingRepo) Create(ctx context.Context, b dom.Booking) (dom.Booking, error) {
	b.TicketID = primitive.NewObjectID()
	m.bookings = append(m.bookings, b)
	return b, nil
}

func (m *memBookingRepo) ListAll(ctx context.Context) ([]dom.Booking, error) {
	return append([]dom.Booking(nil), m.bookings...), nil
}

func (m *memBookingRepo) ListByUser(ctx context.Context, userID string) ([]dom.Booking, error) {
	var out []dom.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) Delete(ctx context.Context, ticketID string) error {
	for i, b := range m.bookings {
		if b.TicketID.Hex() == ticketID {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewBookingService(&memBookingRepo{}, nil)
	h := NewBookingHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/bookings", h.Create)
	api.GET("/bookings", h.List)
	api.GET("/bookings/:id", h.ListByUser)
	api.DELETE("/bookings/:id", h.Delete)
	return r
}

func decodeBookings(t *testing.T, body []byte) []dto.BookingResponse {
	t.Helper()
	var out []dto.BookingResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestCreateBooking(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"id":                "u1",
		"customer_name":     "John",
		"customer_mobileNo": "0123456789",
		"number_of_tickets": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ticket booked successfully", decodeBody(t, w)["message"])
}

func TestCreateBooking_MissingFields(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{"id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookings(t *testing.T) {
	r := newBookingRouter(t)

	for _, b := range []gin.H{
		{"id": "u1", "customer_name": "John", "customer_mobileNo": "0123456789", "number_of_tickets": 2},
		{"id": "u2", "customer_name": "Jane", "customer_mobileNo": "0987654321", "number_of_tickets": 1},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/bookings", b)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Per-user listing filters by user id.
	w := doJSON(t, r, http.MethodGet, "/api/bookings/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decodeBookings(t, w.Body.Bytes())
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)
	assert.Equal(t, "John", mine[0].CustomerName)
	assert.Equal(t, 2, mine[0].NumberOfTickets)

	// Unfiltered listing returns bookings from every user.
	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeBookings(t, w.Body.Bytes())
	assert.Len(t, all, 2)
}

func TestListBookings_UnknownUserEmpty(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBookings(t, w.Body.Bytes()))
}

func TestDeleteBooking(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"id": "u1", "customer_name": "John", "customer_mobileNo": "0123456789", "number_of_tickets": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBookings(t, w.Body.Bytes())
	require.Len(t, list, 1)
	ticketID := list[0].TicketID

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+ticketID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking deleted successfully", decodeBody(t, w)["message"])

	// Second delete of the same ticket finds nothing.
	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+ticketID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["error"])

	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBookings(t, w.Body.Bytes()))
}

func TestDeleteBooking_UnknownTicket(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["error"])
}
