// Package market — handlers.go обрабатывает HTTP-запросы:
// GET /market/items, POST /market/items/:id/purchase, GET /market/purchases.
package market

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/common"
	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// Handler обрабатывает запросы магазина.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик магазина.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListItems обрабатывает GET /market/items.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err, "Ошибка получения товаров")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Purchase обрабатывает POST /market/items/:id/purchase.
func (h *Handler) Purchase(c *gin.Context) {
	userID := middleware.UserID(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный id товара"})
		return
	}

	result, err := h.service.Purchase(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err, "Ошибка покупки")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"code":     result.Code,
		"itemName": result.ItemName,
	})
}

// MyPurchases обрабатывает GET /market/purchases.
func (h *Handler) MyPurchases(c *gin.Context) {
	userID := middleware.UserID(c)

	purchases, err := h.service.MyPurchases(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Ошибка получения покупок")
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
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
