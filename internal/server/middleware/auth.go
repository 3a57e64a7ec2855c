// Package middleware содержит промежуточные обработчики HTTP:
// авторизация по JWT, логирование запросов и rate-limiting.
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// userIDKey — ключ в контексте gin, под которым лежит ID пользователя.
const userIDKey = "userID"

// Auth проверяет заголовок Authorization: Bearer <jwt> и кладёт
// ID пользователя в контекст запроса.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "требуется авторизация"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "некорректный заголовок Authorization"})
			return
		}

		userID, err := ParseToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "токен недействителен или истёк"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// ParseToken валидирует JWT и возвращает ID пользователя из subject.
func ParseToken(tokenString, secret string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			// Принимаем только HMAC — иначе возможна подмена алгоритма
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
	if err != nil {
		return 0, fmt.Errorf("ошибка разбора токена: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("токен недействителен")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректный subject в токене: %w", err)
	}
	return userID, nil
}

// UserID возвращает ID пользователя, положенный Auth в контекст.
// Вызывать только из обработчиков за Auth — иначе вернёт 0.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
