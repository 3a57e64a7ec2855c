// Package tournaments — handlers.go обрабатывает HTTP-запросы:
// GET /tournaments, GET /tournaments/:id, POST /tournaments/redeem.
package tournaments

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/common"
	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// Handler обрабатывает запросы турниров.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик турниров.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List обрабатывает GET /tournaments.
func (h *Handler) List(c *gin.Context) {
	tournaments, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Ошибка получения турниров")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournaments": tournaments})
}

// Get обрабатывает GET /tournaments/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный id турнира"})
		return
	}

	tournament, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if common.IsRejection(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		respondError(c, err, "Ошибка получения турнира")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournament": tournament, "offers": tournament.Offers})
}

type redeemOfferRequest struct {
	OfferID int64 `json:"offerId" binding:"required"`
}

// Redeem обрабатывает POST /tournaments/redeem.
func (h *Handler) Redeem(c *gin.Context) {
	userID := middleware.UserID(c)

	var req redeemOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный запрос"})
		return
	}

	result, err := h.service.RedeemOffer(c.Request.Context(), userID, req.OfferID)
	if err != nil {
		respondError(c, err, "Ошибка обмена билета")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Билет обменян! Вы участвуете в турнире.",
		"tournamentId": result.TournamentID,
	})
}

// respondError превращает ошибку сервиса в HTTP-ответ:
// бизнес-отказ → 400 с текстом, всё остальное → 500 без деталей.
func respondError(c *gin.Context, err error, logMsg string) {
	if common.IsRejection(err) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	log.WithError(err).Error(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "внутренняя ошибка сервера"})
}
