package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuespace/internal/domain"
	"venuespace/internal/pkg/response"
	"venuespace/internal/pkg/validator"
	"venuespace/internal/repository"
)

// UserGetter loads the acting user for permission checks.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Handler struct {
	service *Service
	users   UserGetter
}

func NewHandler(service *Service, users UserGetter) *Handler {
	return &Handler{service: service, users: users}
}

// RegisterPublicRoutes mounts the discovery endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.SearchVenues)
	rg.GET("/venues/:id", h.GetVenue)
	rg.GET("/services", h.ListServices)
}

// RegisterHostRoutes mounts the host-dashboard management endpoints.
func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.GET("/venues", h.GetHostVenues)
	rg.POST("/venues", h.CreateVenue)
	rg.PUT("/venues/:id", h.UpdateVenue)
	rg.DELETE("/venues/:id", h.DeleteVenue)

	rg.GET("/services", h.GetHostServices)
	rg.POST("/services", h.CreateService)
	rg.POST("/services/:id/options", h.AddOption)
	rg.DELETE("/services/:id", h.DeactivateService)
}

func (h *Handler) SearchVenues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	minCapacity, _ := strconv.Atoi(c.Query("min_capacity"))
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	filters := repository.VenueFilters{
		City:        c.Query("city"),
		VenueType:   c.Query("venue_type"),
		MinCapacity: minCapacity,
		MaxPrice:    maxPrice,
		Limit:       perPage,
		Offset:      (page - 1) * perPage,
	}

	venues, total, err := h.service.SearchVenues(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venues")
		return
	}

	response.Success(c, http.StatusOK, VenueListResponse{
		Venues:  venues,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	venue, err := h.service.GetVenue(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venue")
		return
	}

	response.Success(c, http.StatusOK, venue)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) GetHostVenues(c *gin.Context) {
	venues, err := h.service.GetHostVenues(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venues")
		return
	}
	response.Success(c, http.StatusOK, venues)
}

func (h *Handler) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue data", fields)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
		return
	}

	venue, err := h.service.CreateVenue(c.Request.Context(), user, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create venue")
		return
	}

	response.Success(c, http.StatusCreated, venue)
}

func (h *Handler) UpdateVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	venue, err := h.service.UpdateVenue(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update venue")
		return
	}

	response.Success(c, http.StatusOK, venue)
}

func (h *Handler) DeleteVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	if err := h.service.DeleteVenue(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeServiceError(c, err, "Failed to delete venue")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetHostServices(c *gin.Context) {
	services, err := h.service.GetHostServices(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), user, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create service")
		return
	}

	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) AddOption(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	var req CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid option data", fields)
		return
	}

	opt, err := h.service.AddOption(c.Request.Context(), c.GetInt64("user_id"), serviceID, req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to add option")
		return
	}

	response.Success(c, http.StatusCreated, opt)
}

func (h *Handler) DeactivateService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	if err := h.service.DeactivateService(c.Request.Context(), c.GetInt64("user_id"), serviceID); err != nil {
		h.writeServiceError(c, err, "Failed to deactivate service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this resource")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrInvalidVenueType):
		response.Error(c, http.StatusBadRequest, "INVALID_VENUE_TYPE", "Unknown venue type")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
