package rewards

import (
	"errors"
	"testing"
	"time"

	"gamerhub.ru/rewards-backend/internal/common"
)

var msk = time.FixedZone("MSK", 3*60*60)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(n int) *int              { return &n }

func TestCheckDailyGate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, msk)

	tests := []struct {
		name    string
		last    *time.Time
		wantErr error
	}{
		{"никогда не получал", nil, nil},
		{"получал сегодня утром", ptrTime(time.Date(2026, 8, 28, 0, 1, 0, 0, msk)), common.ErrAlreadyClaimed},
		{"получал вчера в 23:59", ptrTime(time.Date(2026, 8, 27, 23, 59, 0, 0, msk)), nil},
		{"получал неделю назад", ptrTime(now.AddDate(0, 0, -7)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDailyGate(tt.last, now, msk, common.ErrAlreadyClaimed)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckDailyGate = %v, ожидалось %v", err, tt.wantErr)
			}
		})
	}
}

// Граница дня определяется часовым поясом приложения, а не UTC.
func TestCheckDailyGateTimezone(t *testing.T) {
	// 27 августа 22:30 UTC = 28 августа 01:30 MSK
	last := time.Date(2026, 8, 27, 22, 30, 0, 0, time.UTC)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, msk)

	if err := CheckDailyGate(&last, now, msk, common.ErrAlreadySpun); !errors.Is(err, common.ErrAlreadySpun) {
		t.Errorf("в MSK оба момента — 28 августа, ожидался отказ, получено %v", err)
	}
	if err := CheckDailyGate(&last, now, time.UTC, common.ErrAlreadySpun); err != nil {
		t.Errorf("в UTC даты разные, ожидался nil, получено %v", err)
	}
}

func TestValidateCodeReward(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, msk)
	base := func() *CodeReward {
		return &CodeReward{
			ID:             1,
			Code:           "WELCOME",
			PointsReward:   100,
			MaxUsesPerUser: 1,
			IsActive:       true,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*CodeReward)
		priorUses int
		wantErr   error
	}{
		{"валидный код", func(r *CodeReward) {}, 0, nil},
		{"код выключен", func(r *CodeReward) { r.IsActive = false }, 0, common.ErrCodeInactive},
		{"ещё не начал действовать", func(r *CodeReward) {
			r.ValidFrom = ptrTime(now.Add(time.Hour))
		}, 0, common.ErrCodeNotYetActive},
		{"срок истёк", func(r *CodeReward) {
			r.ValidUntil = ptrTime(now.Add(-time.Hour))
		}, 0, common.ErrCodeExpired},
		{"глобальный лимит исчерпан", func(r *CodeReward) {
			r.GlobalMaxUses = ptrInt(10)
			r.UsedCount = 10
		}, 0, common.ErrCodeFullyRedeemed},
		{"лимит пользователя исчерпан", func(r *CodeReward) {}, 1, common.ErrMaxUsesReached},
		{"глобальный лимит без лимита (nil)", func(r *CodeReward) {
			r.UsedCount = 1000000
		}, 0, nil},
		{"граница valid_from включительно", func(r *CodeReward) {
			r.ValidFrom = ptrTime(now)
		}, 0, nil},
		{"граница valid_until включительно", func(r *CodeReward) {
			r.ValidUntil = ptrTime(now)
		}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.mutate(r)
			err := ValidateCodeReward(r, tt.priorUses, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCodeReward = %v, ожидалось %v", err, tt.wantErr)
			}
		})
	}
}

// Порядок проверок фиксирован: первая нарушенная побеждает, даже если
// нарушены сразу несколько.
func TestValidateCodeRewardPriority(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, msk)

	// Нарушено всё сразу — должен победить отказ «код выключен»
	r := &CodeReward{
		IsActive:       false,
		ValidFrom:      ptrTime(now.Add(time.Hour)),
		ValidUntil:     ptrTime(now.Add(-time.Hour)),
		GlobalMaxUses:  ptrInt(1),
		UsedCount:      5,
		MaxUsesPerUser: 1,
	}
	if err := ValidateCodeReward(r, 3, now); !errors.Is(err, common.ErrCodeInactive) {
		t.Errorf("ожидался ErrCodeInactive, получено %v", err)
	}

	// Код включён — следующим побеждает «ещё не начал действовать»
	r.IsActive = true
	if err := ValidateCodeReward(r, 3, now); !errors.Is(err, common.ErrCodeNotYetActive) {
		t.Errorf("ожидался ErrCodeNotYetActive, получено %v", err)
	}

	// Окно началось — побеждает «срок истёк»
	r.ValidFrom = nil
	if err := ValidateCodeReward(r, 3, now); !errors.Is(err, common.ErrCodeExpired) {
		t.Errorf("ожидался ErrCodeExpired, получено %v", err)
	}

	// Окно в порядке — побеждает глобальный лимит
	r.ValidUntil = nil
	if err := ValidateCodeReward(r, 3, now); !errors.Is(err, common.ErrCodeFullyRedeemed) {
		t.Errorf("ожидался ErrCodeFullyRedeemed, получено %v", err)
	}

	// Глобальный лимит снят — остаётся лимит пользователя
	r.GlobalMaxUses = nil
	if err := ValidateCodeReward(r, 3, now); !errors.Is(err, common.ErrMaxUsesReached) {
		t.Errorf("ожидался ErrMaxUsesReached, получено %v", err)
	}
}
