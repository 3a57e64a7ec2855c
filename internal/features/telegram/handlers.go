// Package telegram — handlers.go обрабатывает HTTP-запросы:
// POST /telegram/link — выдача ссылки для привязки.
package telegram

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// Handler обрабатывает запросы привязки Telegram.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик привязки.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StartLink обрабатывает POST /telegram/link.
func (h *Handler) StartLink(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.service.StartLink(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Ошибка выдачи ссылки привязки")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, result)
}
