package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow("u:1") {
			t.Fatalf("запрос %d должен быть разрешён", i+1)
		}
	}
	if rl.Allow("u:1") {
		t.Error("четвёртый запрос в окне должен быть отклонён")
	}

	// Лимит считается на каждый ключ отдельно
	if !rl.Allow("u:2") {
		t.Error("другой пользователь не должен упираться в чужой лимит")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Close()

	if !rl.Allow("ip") {
		t.Fatal("первый запрос должен быть разрешён")
	}
	if rl.Allow("ip") {
		t.Fatal("второй запрос сразу же должен быть отклонён")
	}

	time.Sleep(30 * time.Millisecond)
	if !rl.Allow("ip") {
		t.Error("после сдвига окна запрос снова разрешён")
	}
}
