package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuespace/internal/pkg/response"
	"venuespace/internal/repository"
)

// Handler обрабатывает HTTP запросы для избранного
type Handler struct {
	repo repository.FavoriteRepository
}

func NewHandler(repo repository.FavoriteRepository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes регистрирует routes для избранного
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:venueId", h.AddFavorite)
		favorites.DELETE("/:venueId", h.RemoveFavorite)
		favorites.GET("/:venueId/check", h.CheckFavorite)
	}
}

// GetFavorites возвращает список избранных площадок текущего пользователя
func (h *Handler) GetFavorites(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	favorites, total, err := h.repo.GetByUserID(c.Request.Context(), c.GetInt64("user_id"), perPage, (page-1)*perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, ToFavoriteListResponse(favorites, total, page, perPage, c.GetString("lang")))
}

// AddFavorite добавляет площадку в избранное
func (h *Handler) AddFavorite(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("venueId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	fav, err := h.repo.Add(c.Request.Context(), c.GetInt64("user_id"), venueID)
	if errors.Is(err, repository.ErrAlreadyFavorite) {
		response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Venue is already in favorites")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}

	response.Success(c, http.StatusCreated, ToFavoriteResponse(fav, c.GetString("lang")))
}

// RemoveFavorite убирает площадку из избранного
func (h *Handler) RemoveFavorite(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("venueId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	if err := h.repo.Remove(c.Request.Context(), c.GetInt64("user_id"), venueID); err != nil {
		if errors.Is(err, repository.ErrFavoriteMissing) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue is not in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// CheckFavorite проверяет, находится ли площадка в избранном
func (h *Handler) CheckFavorite(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("venueId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	exists, err := h.repo.Exists(c.Request.Context(), c.GetInt64("user_id"), venueID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check favorite")
		return
	}

	response.Success(c, http.StatusOK, CheckFavoriteResponse{IsFavorite: exists})
}
