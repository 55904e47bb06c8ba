package config_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/sangem-ordering/config"
	"github.com/yeremiapane/sangem-ordering/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 500, cfg.AdminOrderLimit)
	assert.Equal(t, 200, cfg.BranchOrderLimit)
	assert.False(t, cfg.HashPasswords)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://sangem.in,https://admin.sangem.in")
	t.Setenv("TELEGRAM_CHAT_IDS", "101,-202")
	t.Setenv("HASH_PASSWORDS", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://sangem.in", "https://admin.sangem.in"}, cfg.CORSOrigins)
	assert.Equal(t, []int64{101, -202}, cfg.TelegramChatIDs)
	assert.True(t, cfg.HashPasswords)
	assert.Equal(t, "debug", cfg.LogOptions().Level)
}

func TestLoadRejectsBadLimits(t *testing.T) {
	t.Setenv("BRANCH_ORDER_LIMIT", "0")
	_, err := config.Load("testdata/missing.env")
	assert.Error(t, err)
}

func TestInitDBUnknownDriver(t *testing.T) {
	_, err := config.InitDB(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBSource: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, config.AutoMigrate(db))
	require.NoError(t, config.SeedDemo(db))
	require.NoError(t, config.SeedDemo(db))

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(6), count)

	var branch models.Profile
	require.NoError(t, db.Where("email = ?", "branch3@sangem.com").First(&branch).Error)
	require.NotNil(t, branch.BranchID)
	assert.Equal(t, "br3", *branch.BranchID)
}
