package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	shiftRepo "glowbook/database/repository/shift"
	"glowbook/models"
	"glowbook/utils"
)

// configCacheTTL bounds how stale a cached shift configuration may be.
// Staff-scheduling writes invalidate the key eagerly; the TTL is a backstop.
const configCacheTTL = 5 * time.Minute

// Resolver answers "what is this provider's working window on this date".
// It owns a read-through Redis cache in front of the shift repository so
// calendar rendering does not hammer Mongo.
type Resolver struct {
	Repo  shiftRepo.Repository
	Cache *redis.Client
}

// NewResolver builds a Resolver. Cache may be nil (e.g. in tests), in which
// case every call reads through to the repository.
func NewResolver(repo shiftRepo.Repository, cache *redis.Client) *Resolver {
	return &Resolver{Repo: repo, Cache: cache}
}

func cacheKey(providerID string) string {
	return "shiftcfg:" + providerID
}

// ResolveDay returns the provider's effective DayConfig for the date, or nil
// when the provider has no shift configuration at all. A non-nil result with
// Closed or an invalid window means "not working that day".
func (r *Resolver) ResolveDay(ctx context.Context, providerID string, date time.Time) (*models.DayConfig, error) {
	cfg, err := r.loadConfiguration(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	dc := EffectiveDayConfig(cfg, date)
	return &dc, nil
}

// Invalidate drops the cached configuration after a scheduling write.
func (r *Resolver) Invalidate(ctx context.Context, providerID string) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.Del(ctx, cacheKey(providerID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate shift config cache",
			zap.String("providerID", providerID), zap.Error(err))
	}
}

func (r *Resolver) loadConfiguration(ctx context.Context, providerID string) (*models.ShiftConfiguration, error) {
	if r.Cache != nil {
		raw, err := r.Cache.Get(ctx, cacheKey(providerID)).Result()
		if err == nil {
			var cfg models.ShiftConfiguration
			if jsonErr := json.Unmarshal([]byte(raw), &cfg); jsonErr == nil {
				return &cfg, nil
			}
			// Corrupt entry: fall through to the repository.
		} else if err != redis.Nil {
			utils.GetLogger().Warn("shift config cache read failed",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}

	cfg, err := r.Repo.GetLatest(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift configuration: %w", err)
	}
	if cfg == nil {
		return nil, nil
	}

	if r.Cache != nil {
		if data, jsonErr := json.Marshal(cfg); jsonErr == nil {
			if err := r.Cache.Set(ctx, cacheKey(providerID), data, configCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("shift config cache write failed",
					zap.String("providerID", providerID), zap.Error(err))
			}
		}
	}
	return cfg, nil
}

// EffectiveDayConfig resolves a single date against a shift configuration.
//
// Precedence:
//  1. A per-date override wins unconditionally, even outside the
//     configuration's validity window.
//  2. Dates outside [StartDate, EndDate] (inclusive, nil EndDate means
//     open-ended) resolve as closed.
//  3. Otherwise the pattern rotates weekly: weekIndex = floor(diffDays/7)
//     mod PatternLength, dayIndex with Monday = 0.
//
// A config that fails the from < to invariant resolves as closed rather
// than erroring.
func EffectiveDayConfig(cfg *models.ShiftConfiguration, date time.Time) models.DayConfig {
	closed := models.DayConfig{Closed: true}
	dateKey := date.Format(models.DateLayout)

	if override, ok := cfg.Overrides[dateKey]; ok {
		return sanitize(override)
	}

	start, err := time.Parse(models.DateLayout, cfg.StartDate)
	if err != nil {
		return closed
	}
	diffDays := daysBetween(start, date)
	if diffDays < 0 {
		return closed
	}
	if cfg.EndDate != nil {
		end, err := time.Parse(models.DateLayout, *cfg.EndDate)
		if err != nil || daysBetween(end, date) > 0 {
			return closed
		}
	}

	if cfg.PatternLength < 1 || len(cfg.Weeks) < cfg.PatternLength {
		return closed
	}
	weekIndex := (diffDays / 7) % cfg.PatternLength
	week := cfg.Weeks[weekIndex]
	dayIndex := mondayIndex(date.Weekday())
	if dayIndex >= len(week) {
		return closed
	}
	return sanitize(week[dayIndex])
}

// sanitize applies the fail-safe: an open day whose window is inverted or
// empty counts as closed.
func sanitize(dc models.DayConfig) models.DayConfig {
	if !dc.Working() {
		return models.DayConfig{Closed: true}
	}
	return dc
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	a = time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	b = time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// mondayIndex maps time.Weekday (Sunday = 0) onto Monday-first indexing.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
