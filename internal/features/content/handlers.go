// Package content — handlers.go обрабатывает HTTP-запросы витрины:
// GET /content/streams, GET /content/streams/:id, GET /content/highlights.
// Все маршруты публичные, авторизация не требуется.
package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Handler обрабатывает запросы витрины.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик витрины.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListStreams обрабатывает GET /content/streams.
func (h *Handler) ListStreams(c *gin.Context) {
	streams, err := h.service.ListStreams(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка получения стримов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streams": streams})
}

// GetStream обрабатывает GET /content/streams/:id.
func (h *Handler) GetStream(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный id стрима"})
		return
	}

	stream, err := h.service.GetStream(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStreamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		log.WithError(err).Error("Ошибка получения стрима")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stream": stream})
}

// ListHighlights обрабатывает GET /content/highlights.
func (h *Handler) ListHighlights(c *gin.Context) {
	highlights, err := h.service.ListHighlights(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка получения хайлайтов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"highlights": highlights})
}
