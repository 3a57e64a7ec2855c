package rewards

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"gamerhub.ru/rewards-backend/internal/common"
)

func testTiers() []*FortunePrizeTier {
	return []*FortunePrizeTier{
		{ID: 1, Name: "Small Win", PointsReward: 10, Weight: 60, IsActive: true},
		{ID: 2, Name: "Big Win", PointsReward: 100, Weight: 30, IsActive: true},
		{ID: 3, Name: "Jackpot", PointsReward: 1000, Weight: 10, IsActive: true},
	}
}

func TestPickTierBoundaries(t *testing.T) {
	tiers := testTiers()

	tests := []struct {
		name string
		draw float64
		want int64 // ожидаемый ID сектора
	}{
		{"начало диапазона", 0.0, 1},
		{"внутри первого сектора", 0.59, 1},
		{"граница первого и второго", 0.60, 2},
		{"внутри второго сектора", 0.89, 2},
		{"граница второго и третьего", 0.90, 3},
		{"почти единица", 0.999999, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := PickTier(tiers, tt.draw)
			if err != nil {
				t.Fatalf("PickTier(%v): неожиданная ошибка %v", tt.draw, err)
			}
			if tier.ID != tt.want {
				t.Errorf("PickTier(%v) = сектор %d, ожидался %d", tt.draw, tier.ID, tt.want)
			}
		})
	}
}

func TestPickTierZeroWeightNeverSelected(t *testing.T) {
	tiers := []*FortunePrizeTier{
		{ID: 1, Name: "Невозможный", Weight: 0},
		{ID: 2, Name: "Обычный", Weight: 50},
		{ID: 3, Name: "Выключенный", Weight: 0},
		{ID: 4, Name: "Редкий", Weight: 50},
	}

	rng := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 10000; i++ {
		tier, err := PickTier(tiers, rng.Float64())
		if err != nil {
			t.Fatalf("PickTier: неожиданная ошибка %v", err)
		}
		if tier.Weight == 0 {
			t.Fatalf("выбран сектор %q с нулевым весом", tier.Name)
		}
	}
}

func TestPickTierEmpty(t *testing.T) {
	if _, err := PickTier(nil, 0.5); !errors.Is(err, common.ErrNoPrizesConfigured) {
		t.Errorf("PickTier(nil) = %v, ожидался ErrNoPrizesConfigured", err)
	}

	allZero := []*FortunePrizeTier{{ID: 1, Weight: 0}, {ID: 2, Weight: 0}}
	if _, err := PickTier(allZero, 0.5); !errors.Is(err, common.ErrNoPrizesConfigured) {
		t.Errorf("PickTier(все веса 0) = %v, ожидался ErrNoPrizesConfigured", err)
	}
}

// Частоты выпадения должны сходиться к weight/W.
func TestPickTierDistribution(t *testing.T) {
	tiers := testTiers()
	total := float64(TotalWeight(tiers))

	const n = 200000
	counts := make(map[int64]int)
	rng := rand.New(rand.NewPCG(7, 13))
	for i := 0; i < n; i++ {
		tier, err := PickTier(tiers, rng.Float64())
		if err != nil {
			t.Fatalf("PickTier: неожиданная ошибка %v", err)
		}
		counts[tier.ID]++
	}

	for _, tier := range tiers {
		want := float64(tier.Weight) / total
		got := float64(counts[tier.ID]) / n
		// 1% абсолютного отклонения при 200k бросков — с большим запасом
		if math.Abs(got-want) > 0.01 {
			t.Errorf("сектор %q: частота %.4f, ожидалась ~%.4f", tier.Name, got, want)
		}
	}
}

func TestTotalWeight(t *testing.T) {
	if got := TotalWeight(testTiers()); got != 100 {
		t.Errorf("TotalWeight = %d, ожидалось 100", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Errorf("TotalWeight(nil) = %d, ожидалось 0", got)
	}
}
