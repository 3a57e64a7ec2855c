package middleware

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID int64, secret string, lifetime time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("ошибка подписи токена: %v", err)
	}
	return signed
}

func TestParseTokenRoundTrip(t *testing.T) {
	token := signToken(t, 42, testSecret, time.Hour)

	userID, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, ожидалось 42", userID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token := signToken(t, 42, "another-secret", time.Hour)

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("токен с чужим секретом должен отклоняться")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token := signToken(t, 42, testSecret, -time.Minute)

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("истёкший токен должен отклоняться")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt", testSecret); err == nil {
		t.Error("мусорная строка должна отклоняться")
	}
}

func TestParseTokenBadSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("ошибка подписи токена: %v", err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("нечисловой subject должен отклоняться")
	}
}
