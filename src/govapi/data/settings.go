package data

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

// Operator-tunable overrides (default quorum, thresholds, voting
// windows) live in the settings table and are cached here so the
// governance hot path never pays a query per lookup.
var (
	settingsMu    sync.RWMutex
	settingsCache map[string]string
)

// LoadSettings replaces the cache with the current table contents.
func LoadSettings(db *gorm.DB) error {
	var rows []types.Setting
	if err := db.Find(&rows).Error; err != nil {
		return err
	}
	next := make(map[string]string, len(rows))
	for _, r := range rows {
		next[r.Name] = r.Value
	}
	settingsMu.Lock()
	settingsCache = next
	settingsMu.Unlock()
	return nil
}

// GetSetting returns the cached value for name, or "" when unset.
// Callers own parsing and fallbacks.
func GetSetting(name string) string {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settingsCache[name]
}

// RefreshSettings re-reads the table so edits land without a restart.
func RefreshSettings(db *gorm.DB) error {
	return LoadSettings(db)
}

// SettingsRefresher reloads the cache every interval until ctx is done.
func SettingsRefresher(ctx context.Context, db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := RefreshSettings(db); err != nil {
				log.Printf("Failed to refresh settings: %v", err)
			}
		}
	}
}
