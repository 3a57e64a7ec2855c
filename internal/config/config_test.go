package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, ожидалось 8080", cfg.HTTPPort)
	}
	if cfg.DailyLoginPoints != 10 || cfg.DailyLoginTickets != 1 {
		t.Errorf("ежедневный бонус = %d/%d, ожидалось 10/1", cfg.DailyLoginPoints, cfg.DailyLoginTickets)
	}
	if cfg.Location == nil || cfg.Location.String() != "Europe/Moscow" {
		t.Errorf("Location = %v, ожидалось Europe/Moscow", cfg.Location)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadCORSList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "https://gamerhub.ru, https://admin.gamerhub.ru")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.gamerhub.ru" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("без DB_PASSWORD и JWT_SECRET загрузка должна падать")
	}
}

func TestLoadShortJWTSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "short")

	if _, err := Load(); err == nil {
		t.Error("короткий JWT_SECRET должен отклоняться")
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: 5432,
		DBUser: "rewards", DBPassword: "pw",
		DBName: "rewards", DBSSLMode: "disable",
	}
	want := "postgres://rewards:pw@localhost:5432/rewards?sslmode=disable"
	if got := cfg.DatabaseDSN(); got != want {
		t.Errorf("DatabaseDSN = %q, ожидалось %q", got, want)
	}
}

func TestLoadBadTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "Nowhere/Unknown")

	if _, err := Load(); err == nil {
		t.Error("неизвестный часовой пояс должен отклоняться")
	}
}
