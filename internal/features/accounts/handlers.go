// Package accounts — handlers.go обрабатывает HTTP-запросы:
// POST /auth/register, POST /auth/login, GET /me.
package accounts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/common"
	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// Handler обрабатывает запросы аккаунтов.
type Handler struct {
	service *Service
}

// NewHandler создаёт новый обработчик аккаунтов.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register обрабатывает POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный запрос"})
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Ошибка регистрации")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.ToProfile()})
}

// Login обрабатывает POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректный запрос"})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Ошибка входа")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.ToProfile()})
}

// Me обрабатывает GET /me — профиль и балансы текущего пользователя.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.UserID(c)

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Ошибка получения профиля")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToProfile()})
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
