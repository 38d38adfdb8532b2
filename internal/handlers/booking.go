package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
	"github.com/surendhiran2000/theatre-management/internal/dto"
	"github.com/surendhiran2000/theatre-management/internal/service"
)

// BookingHandler handles booking creation, listing and deletion.
type BookingHandler struct {
	svc *service.BookingService
}

// NewBookingHandler returns a new BookingHandler.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create godoc
// @Summary      Book tickets
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "Booking details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req.UserID, req.CustomerName, req.CustomerMobileNo, req.NumberOfTickets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "ticket booked successfully"})
}

// List godoc
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   dto.BookingResponse
// @Failure      500  {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookingsToResponses(list))
}

// ListByUser godoc
// @Summary      List bookings for a user
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   dto.BookingResponse
// @Failure      500  {object}  map[string]string
// @Router       /bookings/{id} [get]
func (h *BookingHandler) ListByUser(c *gin.Context) {
	list, err := h.svc.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, bookingsToResponses(list))
}

// Delete godoc
// @Summary      Delete a booking by ticket ID
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Ticket ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func bookingToResponse(b dom.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		TicketID:         b.TicketID.Hex(),
		UserID:           b.UserID,
		CustomerName:     b.CustomerName,
		CustomerMobileNo: b.CustomerMobileNo,
		NumberOfTickets:  b.NumberOfTickets,
	}
}

func bookingsToResponses(list []dom.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, len(list))
	for i := range list {
		out[i] = bookingToResponse(list[i])
	}
	return out
}
