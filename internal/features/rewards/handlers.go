// Package rewards — handlers.go обрабатывает HTTP-запросы:
// POST /rewards/daily-login, POST /rewards/redeem-code,
// POST /rewards/fortune-spin.
package rewards

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/common"
	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// Handler обрабатывает запросы наград.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик наград.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// DailyLogin обрабатывает POST /rewards/daily-login.
func (h *Handler) DailyLogin(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.service.ClaimDaily(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Ошибка выдачи ежедневного бонуса")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points":  result.Points,
		"tickets": result.Tickets,
		"message": fmt.Sprintf("Ежедневный бонус получен! Теперь у вас %s.", common.FormatPoints(result.Points)),
	})
}

type redeemCodeRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

// RedeemCode обрабатывает POST /rewards/redeem-code.
func (h *Handler) RedeemCode(c *gin.Context) {
	userID := middleware.UserID(c)

	var req redeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный запрос"})
		return
	}

	result, err := h.service.RedeemCode(c.Request.Context(), userID, strings.TrimSpace(req.Code))
	if err != nil {
		respondError(c, err, "Ошибка активации промокода")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Промокод активирован!",
		"pointsAdded":  result.PointsAdded,
		"ticketsAdded": result.TicketsAdded,
	})
}

// FortuneSpin обрабатывает POST /rewards/fortune-spin.
func (h *Handler) FortuneSpin(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.service.SpinFortune(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Ошибка вращения колеса")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prizeName":     result.PrizeName,
		"pointsAwarded": result.PointsAwarded,
		"newPoints":     result.NewPoints,
		"message":       fmt.Sprintf("Вы выиграли %s!", common.FormatPoints(result.PointsAwarded)),
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
