// Package common содержит общие утилиты, используемые во всём проекте.
// helpers.go — работа с календарными датами и русская плюрализация.
package common

import (
	"fmt"
	"math"
	"time"
)

// SameCalendarDay сообщает, приходятся ли два момента времени
// на одну календарную дату в часовом поясе loc.
//
// Именно календарная дата, а не «прошло ли 24 часа»: бонус, полученный
// вчера в 23:59, снова доступен сегодня в 00:00.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// PluralizePoints возвращает правильную форму слова «очко» для числа n.
//
// Правила русского языка:
//   - n%10==1 И n%100!=11 → "очко" (1, 21, 31, 101, ...)
//   - n%10 в [2,3,4] И n%100 НЕ в [12,13,14] → "очка" (2, 3, 4, 22, ...)
//   - Остальные случаи → "очков" (0, 5-20, 25-30, 100, ...)
func PluralizePoints(n int64) string {
	absN := int64(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "очко"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "очка"
	}
	return "очков"
}

// FormatPoints форматирует количество очков в читабельную строку.
// Пример: FormatPoints(150) → "150 очков"
func FormatPoints(n int64) string {
	return fmt.Sprintf("%d %s", n, PluralizePoints(n))
}
