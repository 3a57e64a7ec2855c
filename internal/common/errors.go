// Package common — errors.go определяет бизнес-ошибки,
// которые используются во всех модулях сервера.
// Эти ошибки позволяют обработчикам различать отказ по правилам
// (HTTP 400) и инфраструктурный сбой (HTTP 500).
package common

import "errors"

// Ошибки ежедневных наград
var (
	// ErrAlreadyClaimed — ежедневный бонус уже получен сегодня
	ErrAlreadyClaimed = errors.New("ежедневный бонус уже получен сегодня")
	// ErrAlreadySpun — колесо фортуны уже крутили сегодня
	ErrAlreadySpun = errors.New("колесо фортуны уже крутили сегодня")
	// ErrNoPrizesConfigured — нет ни одного активного приза
	ErrNoPrizesConfigured = errors.New("призы колеса фортуны не настроены")
)

// Ошибки промокодов (в порядке приоритета проверок)
var (
	// ErrInvalidCode — промокод не существует
	ErrInvalidCode = errors.New("промокод не найден")
	// ErrCodeInactive — промокод выключен администратором
	ErrCodeInactive = errors.New("промокод неактивен")
	// ErrCodeNotYetActive — срок действия промокода ещё не начался
	ErrCodeNotYetActive = errors.New("промокод ещё не начал действовать")
	// ErrCodeExpired — срок действия промокода истёк
	ErrCodeExpired = errors.New("срок действия промокода истёк")
	// ErrCodeFullyRedeemed — глобальный лимит использований исчерпан
	ErrCodeFullyRedeemed = errors.New("промокод полностью израсходован")
	// ErrMaxUsesReached — лимит использований на пользователя исчерпан
	ErrMaxUsesReached = errors.New("вы уже использовали этот промокод максимальное число раз")
)

// Ошибки магазина и турниров
var (
	// ErrItemNotFound — товар не найден
	ErrItemNotFound = errors.New("товар не найден")
	// ErrOfferNotFound — билетное предложение не найдено
	ErrOfferNotFound = errors.New("предложение не найдено")
	// ErrTournamentNotFound — турнир не найден
	ErrTournamentNotFound = errors.New("турнир не найден")
	// ErrOutOfStock — счётчик остатка товара на нуле
	ErrOutOfStock = errors.New("товар закончился")
	// ErrNoCodesAvailable — в пуле нет ни одного свободного кода.
	// Отличается от ErrOutOfStock: счётчик остатка и число свободных
	// кодов могут временно расходиться, решающим является пул кодов.
	ErrNoCodesAvailable = errors.New("свободные коды для товара закончились")
	// ErrSoldOut — билеты распроданы
	ErrSoldOut = errors.New("билеты распроданы")
	// ErrInsufficientPoints — недостаточно очков
	ErrInsufficientPoints = errors.New("недостаточно очков")
	// ErrInsufficientTickets — недостаточно билетов
	ErrInsufficientTickets = errors.New("недостаточно билетов")
	// ErrTelegramRequired — аккаунт не привязан к Telegram
	ErrTelegramRequired = errors.New("требуется привязка Telegram")
)

// Ошибки аккаунтов
var (
	// ErrUserNotFound — пользователь не найден в базе
	ErrUserNotFound = errors.New("пользователь не найден")
	// ErrEmailTaken — email уже зарегистрирован
	ErrEmailTaken = errors.New("пользователь с таким email уже существует")
	// ErrInvalidCredentials — неверный email или пароль
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	// ErrLinkTokenNotFound — токен привязки Telegram не найден
	ErrLinkTokenNotFound = errors.New("токен привязки не найден")
)

// rejections — полный список бизнес-отказов.
// Всё, чего нет в списке, считается инфраструктурной ошибкой.
var rejections = []error{
	ErrAlreadyClaimed, ErrAlreadySpun, ErrNoPrizesConfigured,
	ErrInvalidCode, ErrCodeInactive, ErrCodeNotYetActive,
	ErrCodeExpired, ErrCodeFullyRedeemed, ErrMaxUsesReached,
	ErrItemNotFound, ErrOfferNotFound, ErrTournamentNotFound, ErrOutOfStock,
	ErrNoCodesAvailable, ErrSoldOut,
	ErrInsufficientPoints, ErrInsufficientTickets, ErrTelegramRequired,
	ErrUserNotFound, ErrEmailTaken, ErrInvalidCredentials,
	ErrLinkTokenNotFound,
}

// IsRejection сообщает, является ли ошибка отказом по бизнес-правилам.
// Отказ детерминирован: повтор операции при неизменном состоянии
// вернёт тот же самый отказ.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
