package config

import (
	"reflect"
	"testing"
	"time"
)

// TestParseCSVEnv проверяет разбор списка email из ENV.
func TestParseCSVEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@example.com, ,USER@Example.com ")

	got := parseCSVEnv("ADMIN_EMAILS")
	want := []string{"admin@example.com", "user@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseCSVEnvMissing проверяет поведение при отсутствии переменной.
func TestParseCSVEnvMissing(t *testing.T) {
	got := parseCSVEnv("MISSING_ENV")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestDatabaseConnectSettings проверяет параметры ретраев подключения к базе.
func TestDatabaseConnectSettings(t *testing.T) {
	retries, err := parseIntEnv("DB_CONNECT_RETRIES", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retries != 5 {
		t.Fatalf("expected default 5 retries, got %d", retries)
	}

	t.Setenv("DB_CONNECT_BACKOFF", "250ms")
	backoff, err := parseDurationEnv("DB_CONNECT_BACKOFF", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backoff != 250*time.Millisecond {
		t.Fatalf("expected 250ms backoff, got %v", backoff)
	}
}

// TestParseFloatEnv проверяет разбор дробных констант движка.
func TestParseFloatEnv(t *testing.T) {
	t.Setenv("ENGINE_KG_PER_PERSON_PER_DAY", "0.07")

	got, err := parseFloatEnv("ENGINE_KG_PER_PERSON_PER_DAY", 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.07 {
		t.Fatalf("expected 0.07, got %v", got)
	}

	got, err = parseFloatEnv("ENGINE_MISSING", 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.05 {
		t.Fatalf("expected fallback 0.05, got %v", got)
	}
}

// TestParseFloatEnvInvalid проверяет отказ на нечисловых и неположительных значениях.
func TestParseFloatEnvInvalid(t *testing.T) {
	t.Setenv("ENGINE_HISTORY_MIN_DAYS", "many")
	if _, err := parseFloatEnv("ENGINE_HISTORY_MIN_DAYS", 3); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	t.Setenv("ENGINE_HISTORY_MIN_DAYS", "-1")
	if _, err := parseFloatEnv("ENGINE_HISTORY_MIN_DAYS", 3); err == nil {
		t.Fatal("expected error for negative value")
	}
}
