// Package rewards — wheel.go реализует взвешенный случайный выбор
// сектора колеса фортуны.
package rewards

import "gamerhub.ru/rewards-backend/internal/common"

// TotalWeight возвращает сумму весов всех секторов.
func TotalWeight(tiers []*FortunePrizeTier) int {
	total := 0
	for _, t := range tiers {
		total += t.Weight
	}
	return total
}

// PickTier выбирает сектор по равномерной величине draw из [0, 1).
//
// Алгоритм: u = draw × W, где W — сумма весов; секторы обходятся
// в устойчивом порядке (как загружены, ORDER BY id), от u отнимается
// вес каждого сектора, и выбирается первый сектор, на котором
// остаток стал меньше его веса. Сектор с нулевым весом не может
// быть выбран никогда.
//
// Вероятность сектора равна weight/W — это свойство проверяется
// статистическим тестом.
func PickTier(tiers []*FortunePrizeTier, draw float64) (*FortunePrizeTier, error) {
	if len(tiers) == 0 {
		return nil, common.ErrNoPrizesConfigured
	}

	total := TotalWeight(tiers)
	if total <= 0 {
		// Все секторы с нулевым весом — выбирать не из чего
		return nil, common.ErrNoPrizesConfigured
	}

	u := draw * float64(total)
	for _, t := range tiers {
		if u < float64(t.Weight) {
			return t, nil
		}
		u -= float64(t.Weight)
	}

	// Сюда можно попасть только из-за накопленной погрешности float
	// на самой границе диапазона — отдаём последний сектор с весом > 0.
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].Weight > 0 {
			return tiers[i], nil
		}
	}
	return nil, common.ErrNoPrizesConfigured
}
