package tournaments

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// Каталог турниров отдаёт презентационные поля как есть:
// фронт рисует баннер и бейдж статуса прямо из ответа.
func TestTournamentJSONShape(t *testing.T) {
	start := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	tour := Tournament{
		ID:        1,
		Name:      "Summer Championship 2026",
		Game:      "League of Legends",
		PrizePool: "10000",
		StartDate: &start,
		Status:    "upcoming",
		BannerURL: "https://example.com/banner.png",
	}

	raw, err := json.Marshal(&tour)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	body := string(raw)

	for _, want := range []string{
		`"status":"upcoming"`,
		`"bannerImageUrl":"https://example.com/banner.png"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("в JSON нет %s: %s", want, body)
		}
	}
}
