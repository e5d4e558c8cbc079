package schedule

import (
	"context"
	"testing"
	"time"

	"glowbook/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// openWeek builds seven identical open days.
func openWeek(from, to int) []models.DayConfig {
	week := make([]models.DayConfig, 7)
	for i := range week {
		week[i] = models.DayConfig{From: from, To: to}
	}
	return week
}

func closedWeek() []models.DayConfig {
	week := make([]models.DayConfig, 7)
	for i := range week {
		week[i] = models.DayConfig{Closed: true}
	}
	return week
}

func strPtr(s string) *string { return &s }

func TestEffectiveDayConfigPatternRotation(t *testing.T) {
	// 2026-01-05 is a Monday.
	cfg := &models.ShiftConfiguration{
		ProviderID:    "p1",
		PatternLength: 2,
		StartDate:     "2026-01-05",
		Weeks:         [][]models.DayConfig{openWeek(540, 1020), closedWeek()},
	}

	tests := []struct {
		name    string
		date    string
		working bool
	}{
		{"first week is open", "2026-01-05", true},
		{"second week is closed", "2026-01-12", false},
		{"rotation wraps back to the first week", "2026-01-19", true},
		{"fourth week is closed again", "2026-01-26", false},
		{"mid-week day follows its week", "2026-01-14", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := EffectiveDayConfig(cfg, mustDate(t, tt.date))
			if dc.Working() != tt.working {
				t.Errorf("EffectiveDayConfig(%s).Working() = %v, want %v", tt.date, dc.Working(), tt.working)
			}
		})
	}
}

func TestEffectiveDayConfigOverridePrecedence(t *testing.T) {
	end := strPtr("2026-03-01")
	cfg := &models.ShiftConfiguration{
		ProviderID:    "p1",
		PatternLength: 1,
		StartDate:     "2026-01-05",
		EndDate:       end,
		Weeks:         [][]models.DayConfig{openWeek(540, 1020)},
		Overrides: map[string]models.DayConfig{
			"2026-01-07": {From: 720, To: 840},        // shortened day
			"2026-01-08": {Closed: true},              // day off
			"2026-01-01": {From: 600, To: 780},        // before the validity window
			"2026-03-15": {From: 600, To: 780},        // after the validity window
			"2026-01-09": {From: 900, To: 600},        // inverted window
		},
	}

	tests := []struct {
		name string
		date string
		want models.DayConfig
	}{
		{"override narrows the day", "2026-01-07", models.DayConfig{From: 720, To: 840}},
		{"closed override beats an open pattern day", "2026-01-08", models.DayConfig{Closed: true}},
		{"override applies before the validity window", "2026-01-01", models.DayConfig{From: 600, To: 780}},
		{"override applies after the validity window", "2026-03-15", models.DayConfig{From: 600, To: 780}},
		{"inverted override resolves closed", "2026-01-09", models.DayConfig{Closed: true}},
		{"non-override day follows the pattern", "2026-01-06", models.DayConfig{From: 540, To: 1020}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveDayConfig(cfg, mustDate(t, tt.date))
			if got != tt.want {
				t.Errorf("EffectiveDayConfig(%s) = %+v, want %+v", tt.date, got, tt.want)
			}
		})
	}
}

func TestEffectiveDayConfigValidityWindow(t *testing.T) {
	cfg := &models.ShiftConfiguration{
		ProviderID:    "p1",
		PatternLength: 1,
		StartDate:     "2026-01-05",
		EndDate:       strPtr("2026-01-18"),
		Weeks:         [][]models.DayConfig{openWeek(540, 1020)},
	}

	tests := []struct {
		name    string
		date    string
		working bool
	}{
		{"before start date", "2026-01-04", false},
		{"on start date", "2026-01-05", true},
		{"inside window", "2026-01-10", true},
		{"on end date (inclusive)", "2026-01-18", true},
		{"after end date", "2026-01-19", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := EffectiveDayConfig(cfg, mustDate(t, tt.date))
			if dc.Working() != tt.working {
				t.Errorf("EffectiveDayConfig(%s).Working() = %v, want %v", tt.date, dc.Working(), tt.working)
			}
		})
	}
}

func TestEffectiveDayConfigFailSafe(t *testing.T) {
	tests := []struct {
		name string
		cfg  *models.ShiftConfiguration
		date string
	}{
		{
			name: "inverted pattern day resolves closed",
			cfg: &models.ShiftConfiguration{
				PatternLength: 1,
				StartDate:     "2026-01-05",
				Weeks:         [][]models.DayConfig{openWeek(1020, 540)},
			},
			date: "2026-01-06",
		},
		{
			name: "zero-length pattern day resolves closed",
			cfg: &models.ShiftConfiguration{
				PatternLength: 1,
				StartDate:     "2026-01-05",
				Weeks:         [][]models.DayConfig{openWeek(600, 600)},
			},
			date: "2026-01-06",
		},
		{
			name: "pattern shorter than declared length resolves closed",
			cfg: &models.ShiftConfiguration{
				PatternLength: 2,
				StartDate:     "2026-01-05",
				Weeks:         [][]models.DayConfig{openWeek(540, 1020)},
			},
			date: "2026-01-06",
		},
		{
			name: "unparseable start date resolves closed",
			cfg: &models.ShiftConfiguration{
				PatternLength: 1,
				StartDate:     "not-a-date",
				Weeks:         [][]models.DayConfig{openWeek(540, 1020)},
			},
			date: "2026-01-06",
		},
		{
			name: "truncated week resolves closed",
			cfg: &models.ShiftConfiguration{
				PatternLength: 1,
				StartDate:     "2026-01-05",
				Weeks:         [][]models.DayConfig{{{From: 540, To: 1020}}},
			},
			date: "2026-01-07", // Wednesday, index 2, beyond the single entry
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := EffectiveDayConfig(tt.cfg, mustDate(t, tt.date))
			if dc.Working() {
				t.Errorf("EffectiveDayConfig(%s) = %+v, want closed", tt.date, dc)
			}
		})
	}
}

func TestEffectiveDayConfigMondayFirstIndexing(t *testing.T) {
	// Only Wednesday (index 2) is open.
	week := closedWeek()
	week[2] = models.DayConfig{From: 540, To: 1020}
	cfg := &models.ShiftConfiguration{
		PatternLength: 1,
		StartDate:     "2026-01-05",
		Weeks:         [][]models.DayConfig{week},
	}

	if dc := EffectiveDayConfig(cfg, mustDate(t, "2026-01-07")); !dc.Working() {
		t.Errorf("Wednesday resolved %+v, want open", dc)
	}
	if dc := EffectiveDayConfig(cfg, mustDate(t, "2026-01-11")); dc.Working() {
		t.Errorf("Sunday resolved %+v, want closed", dc)
	}
}

type fakeShiftRepo struct {
	cfg *models.ShiftConfiguration
	err error
}

func (f *fakeShiftRepo) GetLatest(ctx context.Context, providerID string) (*models.ShiftConfiguration, error) {
	return f.cfg, f.err
}

func (f *fakeShiftRepo) Replace(ctx context.Context, cfg *models.ShiftConfiguration) error {
	f.cfg = cfg
	return nil
}

func (f *fakeShiftRepo) SetOverride(ctx context.Context, providerID, dateKey string, cfg models.DayConfig) error {
	if f.cfg.Overrides == nil {
		f.cfg.Overrides = map[string]models.DayConfig{}
	}
	f.cfg.Overrides[dateKey] = cfg
	return nil
}

func TestResolveDay(t *testing.T) {
	repo := &fakeShiftRepo{cfg: &models.ShiftConfiguration{
		ProviderID:    "p1",
		PatternLength: 1,
		StartDate:     "2026-01-05",
		Weeks:         [][]models.DayConfig{openWeek(540, 1020)},
	}}
	r := NewResolver(repo, nil)

	dc, err := r.ResolveDay(context.Background(), "p1", mustDate(t, "2026-01-06"))
	if err != nil {
		t.Fatalf("ResolveDay: %v", err)
	}
	if dc == nil || !dc.Working() || dc.From != 540 || dc.To != 1020 {
		t.Errorf("ResolveDay = %+v, want open 540-1020", dc)
	}
}

func TestResolveDayNoConfiguration(t *testing.T) {
	r := NewResolver(&fakeShiftRepo{}, nil)

	dc, err := r.ResolveDay(context.Background(), "p1", mustDate(t, "2026-01-06"))
	if err != nil {
		t.Fatalf("ResolveDay: %v", err)
	}
	if dc != nil {
		t.Errorf("ResolveDay = %+v, want nil for a provider without configuration", dc)
	}
}
