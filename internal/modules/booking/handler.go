package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuespace/internal/domain"
	"venuespace/internal/pkg/response"
	"venuespace/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the client-facing booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings/ref/:reference", h.GetBookingByReference)
	rg.PATCH("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/my/bookings", h.ListMyBookings)
}

// RegisterHostRoutes mounts the host-dashboard booking endpoints.
func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/bookings/:id/confirm", h.ConfirmBooking)
	rg.PATCH("/bookings/:id/complete", h.CompleteBooking)
	rg.PATCH("/bookings/:id/options/:optionId/approve", h.ApproveOption)
	rg.PATCH("/bookings/:id/options/:optionId/reject", h.RejectOption)
	rg.GET("/venues/:id/bookings", h.ListVenueBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data", fields)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	details, err := h.service.GetDetails(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.GetString("role"),
		id,
		c.GetString("lang"),
	)
	if err != nil {
		h.writeServiceError(c, err, "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, details)
}

func (h *Handler) GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REFERENCE", "Invalid booking reference")
		return
	}

	details, err := h.service.GetDetailsByReference(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.GetString("role"),
		reference,
		c.GetString("lang"),
	)
	if err != nil {
		h.writeServiceError(c, err, "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, details)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id, req.Reason)
	if err != nil {
		h.writeServiceError(c, err, "Failed to cancel booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	h.updateStatus(c, h.service.ConfirmBooking, "Failed to confirm booking")
}

func (h *Handler) CompleteBooking(c *gin.Context) {
	h.updateStatus(c, h.service.CompleteBooking, "Failed to complete booking")
}

func (h *Handler) ApproveOption(c *gin.Context) {
	bookingID, optionID, ok := h.bookingOptionIDs(c)
	if !ok {
		return
	}

	b, err := h.service.ApproveOption(c.Request.Context(), c.GetInt64("user_id"), bookingID, optionID)
	if err != nil {
		h.writeServiceError(c, err, "Failed to approve option")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) RejectOption(c *gin.Context) {
	bookingID, optionID, ok := h.bookingOptionIDs(c)
	if !ok {
		return
	}

	var req RejectOptionRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.service.RejectOption(c.Request.Context(), c.GetInt64("user_id"), bookingID, optionID, req.Reason)
	if err != nil {
		h.writeServiceError(c, err, "Failed to reject option")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	list, err := h.service.ListMyBookings(c.Request.Context(), c.GetInt64("user_id"), page, perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListVenueBookings(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	bookings, err := h.service.ListVenueBookings(c.Request.Context(), c.GetInt64("user_id"), venueID)
	if err != nil {
		h.writeServiceError(c, err, "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) updateStatus(c *gin.Context, fn func(ctx context.Context, hostID, bookingID int64) (*domain.Booking, error), fallback string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := fn(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeServiceError(c, err, fallback)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) bookingOptionIDs(c *gin.Context) (int64, int64, bool) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, 0, false
	}
	optionID, err := strconv.ParseInt(c.Param("optionId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid option ID")
		return 0, 0, false
	}
	return bookingID, optionID, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", "Cancellation reason is required")
	case errors.Is(err, ErrUnknownOption):
		response.Error(c, http.StatusBadRequest, "UNKNOWN_OPTION", "Unknown service option")
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "NOT_AVAILABLE", "Venue is not available for these dates")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking status does not allow this action")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
