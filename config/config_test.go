package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := FromEnv()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 5*time.Minute, cfg.Server.IdempotencyTTL)
		assert.Nil(t, cfg.Server.APIKeys)
		assert.Empty(t, cfg.Catalog.File)
		assert.Equal(t, "59891284128", cfg.Catalog.WhatsAppPhone)
		assert.True(t, decimal.NewFromInt(20000).Equal(cfg.Catalog.MinimumPurchase))
		assert.Equal(t, 1000, cfg.Session.Capacity)
		assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "catalog_service", cfg.Database.DatabaseName)
		assert.Equal(t, 90, cfg.Database.ExportsTTLDays)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("API_KEYS", "key1, key2,,")
		_ = os.Setenv("CATALOG_FILE", "/etc/catalog.json")
		_ = os.Setenv("WHATSAPP_PHONE", "59800000000")
		_ = os.Setenv("MIN_PURCHASE", "15000.50")
		_ = os.Setenv("SESSION_CAPACITY", "10")
		_ = os.Setenv("SESSION_TTL", "30m")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_EXPORTS_TTL", "0")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := FromEnv()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, []string{"key1", "key2"}, cfg.Server.APIKeys)
		assert.Equal(t, "/etc/catalog.json", cfg.Catalog.File)
		assert.Equal(t, "59800000000", cfg.Catalog.WhatsAppPhone)
		assert.Equal(t, "15000.50", cfg.Catalog.MinimumPurchase.StringFixed(2))
		assert.Equal(t, 10, cfg.Session.Capacity)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, 0, cfg.Database.ExportsTTLDays)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("MIN_PURCHASE", "-5")
		defer os.Clearenv()

		cfg := FromEnv()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.True(t, decimal.NewFromInt(20000).Equal(cfg.Catalog.MinimumPurchase))
	})
}

func TestParseCORSOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "defaults only", input: "", want: []string{"http://localhost:3000", "http://127.0.0.1:3000"}},
		{
			name:  "appends configured origins",
			input: "https://shop.example.com, https://admin.example.com",
			want:  []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://shop.example.com", "https://admin.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCORSOrigins(tt.input))
		})
	}
}

func TestLoadFile(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nWHATSAPP_PHONE=59811111111\n"), 0o600))
	_ = os.Setenv("PORT", "6060")

	cfg := LoadFile(path)

	assert.Equal(t, "6060", cfg.Server.Port, "environment wins over .env")
	assert.Equal(t, "59811111111", cfg.Catalog.WhatsAppPhone)
}

func TestLoadFile_Missing(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.Server.Port)
}
