package booking

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/services/schedule"
)

// --- in-memory fakes -------------------------------------------------------

type memShiftRepo struct {
	configs map[string]*models.ShiftConfiguration
}

func (m *memShiftRepo) GetLatest(ctx context.Context, providerID string) (*models.ShiftConfiguration, error) {
	return m.configs[providerID], nil
}

func (m *memShiftRepo) Replace(ctx context.Context, cfg *models.ShiftConfiguration) error {
	m.configs[cfg.ProviderID] = cfg
	return nil
}

func (m *memShiftRepo) SetOverride(ctx context.Context, providerID, dateKey string, cfg models.DayConfig) error {
	c, ok := m.configs[providerID]
	if !ok {
		return fmt.Errorf("no configuration for %s", providerID)
	}
	if c.Overrides == nil {
		c.Overrides = map[string]models.DayConfig{}
	}
	c.Overrides[dateKey] = cfg
	return nil
}

type memBookingRepo struct {
	bookings []models.Booking
	nextID   int

	// beforeCreate, when set, runs at the start of CreateGroup. Tests use
	// it to slip a competing booking in after the engine's overlap check.
	beforeCreate func()
}

func (m *memBookingRepo) EnsureIndexes() error { return nil }

func (m *memBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == bookingID {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) ListForDay(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Status == models.BookingStatusConfirmed {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (m *memBookingRepo) ListForClient(ctx context.Context, clientID string, limit int) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memBookingRepo) CountOverlapping(ctx context.Context, providerID, date string, start, end int) (int, error) {
	count := 0
	for _, b := range m.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Status == models.BookingStatusConfirmed &&
			b.Start < end && start < b.End {
			count++
		}
	}
	return count, nil
}

func (m *memBookingRepo) CreateGroup(ctx context.Context, drafts []*models.Booking) ([]string, error) {
	if m.beforeCreate != nil {
		m.beforeCreate()
		m.beforeCreate = nil
	}
	inserted := 0
	ids := make([]string, 0, len(drafts))
	for _, d := range drafts {
		count, _ := m.CountOverlapping(ctx, d.ProviderID, d.Date, d.Start, d.End)
		if count > 0 {
			m.bookings = m.bookings[:len(m.bookings)-inserted] // roll back
			return nil, bookingRepo.ErrOverlap
		}
		m.nextID++
		b := *d
		b.ID = fmt.Sprintf("b%d", m.nextID)
		b.Status = models.BookingStatusConfirmed
		b.CreatedAt = time.Now()
		m.bookings = append(m.bookings, b)
		inserted++
		ids = append(ids, b.ID)
	}
	return ids, nil
}

func (m *memBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == bookingID {
			m.bookings[i].Status = models.BookingStatusCancelled
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", bookingID)
}

func (m *memBookingRepo) confirmed() []models.Booking {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Status == models.BookingStatusConfirmed {
			out = append(out, b)
		}
	}
	return out
}

type memStaffRepo struct {
	staff []models.Staff
}

func (m *memStaffRepo) GetByID(ctx context.Context, staffID string) (*models.Staff, error) {
	for i := range m.staff {
		if m.staff[i].ID == staffID {
			s := m.staff[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memStaffRepo) ListActive(ctx context.Context) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range m.staff {
		if s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	m.staff = append(m.staff, *staff)
	return nil
}

func (m *memStaffRepo) UpdateCapabilities(ctx context.Context, staffID string, caps models.Capabilities) error {
	for i := range m.staff {
		if m.staff[i].ID == staffID {
			m.staff[i].Capabilities = caps
			return nil
		}
	}
	return fmt.Errorf("staff %s not found", staffID)
}

func (m *memStaffRepo) SetActive(ctx context.Context, staffID string, active bool) error {
	for i := range m.staff {
		if m.staff[i].ID == staffID {
			m.staff[i].Active = active
			return nil
		}
	}
	return fmt.Errorf("staff %s not found", staffID)
}

type memCatalogRepo struct {
	services map[string]models.Service
}

func (m *memCatalogRepo) List(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCatalogRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := m.services[id]
		if !ok {
			return nil, fmt.Errorf("unknown service id %s", id)
		}
		out = append(out, svc)
	}
	return out, nil
}

// --- fixture ---------------------------------------------------------------

// testNow is a Monday morning; testDate is the following Tuesday.
var (
	testNow  = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	testDate = "2026-03-10"
)

// newTestEngine wires an engine over in-memory fakes. Staff: anna performs
// both categories, bea only cat-nails, cleo is inactive. Everyone's shift
// pattern is one open week 09:00-17:00 starting 2026-01-05 (a Monday).
func newTestEngine() (*DefaultEngine, *memBookingRepo, *memStaffRepo, *memShiftRepo) {
	week := make([]models.DayConfig, 7)
	for i := range week {
		week[i] = models.DayConfig{From: 540, To: 1020}
	}
	shiftCfg := func(providerID string) *models.ShiftConfiguration {
		return &models.ShiftConfiguration{
			ID:            "cfg-" + providerID,
			ProviderID:    providerID,
			PatternLength: 1,
			StartDate:     "2026-01-05",
			Weeks:         [][]models.DayConfig{week},
		}
	}
	shifts := &memShiftRepo{configs: map[string]*models.ShiftConfiguration{
		"anna": shiftCfg("anna"),
		"bea":  shiftCfg("bea"),
		"cleo": shiftCfg("cleo"),
	}}

	staff := &memStaffRepo{staff: []models.Staff{
		{ID: "anna", Name: "Anna", Active: true, Capabilities: models.Capabilities{CategoryIDs: []string{"cat-nails", "cat-feet"}}},
		{ID: "bea", Name: "Bea", Active: true, Capabilities: models.Capabilities{CategoryIDs: []string{"cat-nails"}}},
		{ID: "cleo", Name: "Cleo", Active: false, Capabilities: models.Capabilities{CategoryIDs: []string{"cat-nails", "cat-feet"}}},
	}}

	catalog := &memCatalogRepo{services: map[string]models.Service{
		"manicure": {ID: "manicure", Name: "Manicure", DurationMin: 60, CategoryID: "cat-nails", PriceRSD: 1500},
		"gel":      {ID: "gel", Name: "Gel polish", DurationMin: 30, CategoryID: "cat-nails", PriceRSD: 2000},
		"pedicure": {ID: "pedicure", Name: "Pedicure", DurationMin: 45, CategoryID: "cat-feet", PriceRSD: 1800},
	}}

	bookings := &memBookingRepo{}

	hours := models.SalonHours{}
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		hours[wd] = []models.Interval{{Start: 540, End: 1200}}
	}

	engine := &DefaultEngine{
		Resolver:    schedule.NewResolver(shifts, nil),
		BookingRepo: bookings,
		StaffRepo:   staff,
		CatalogRepo: catalog,
		SalonHours:  hours,
		StepMin:     60,
		HorizonDays: 30,
		Now:         func() time.Time { return testNow },
	}
	return engine, bookings, staff, shifts
}

func slotStarts(slots []models.Slot) []int {
	starts := make([]int, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	return starts
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- ComputeSlots ----------------------------------------------------------

func TestComputeSlotsSingleProvider(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	res, err := engine.ComputeSlots(context.Background(), "anna", testDate, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	want := []int{540, 600, 660, 720, 780, 840, 900, 960}
	if !equalInts(slotStarts(res.Slots), want) {
		t.Errorf("starts = %v, want %v", slotStarts(res.Slots), want)
	}
	if res.AvailabilityError != "" {
		t.Errorf("unexpected availability error %q", res.AvailabilityError)
	}
	for _, s := range res.Slots {
		if s.ProviderID != "anna" || s.Date != testDate || s.End != s.Start+60 {
			t.Errorf("malformed slot %+v", s)
		}
	}
}

func TestComputeSlotsExcludesBookedInterval(t *testing.T) {
	engine, bookings, _, _ := newTestEngine()
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID: "b0", ProviderID: "anna", ClientID: "c1", Date: testDate,
		Start: 780, End: 840, Status: models.BookingStatusConfirmed,
	})

	res, err := engine.ComputeSlots(context.Background(), "anna", testDate, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	want := []int{540, 600, 660, 720, 840, 900, 960}
	if !equalInts(slotStarts(res.Slots), want) {
		t.Errorf("starts = %v, want %v", slotStarts(res.Slots), want)
	}
}

func TestComputeSlotsOverrideNarrowsDay(t *testing.T) {
	engine, _, _, shifts := newTestEngine()
	shifts.configs["anna"].Overrides = map[string]models.DayConfig{
		testDate: {From: 720, To: 840},
	}

	res, err := engine.ComputeSlots(context.Background(), "anna", testDate, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if !equalInts(slotStarts(res.Slots), []int{720, 780}) {
		t.Errorf("starts = %v, want [720 780]", slotStarts(res.Slots))
	}
}

func TestComputeSlotsCartDurationSpansServices(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	// 60 + 30 + 45 = 135 minutes per slot.
	res, err := engine.ComputeSlots(context.Background(), "anna", testDate, []string{"manicure", "gel", "pedicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if len(res.Slots) == 0 {
		t.Fatal("expected slots")
	}
	for _, s := range res.Slots {
		if s.End-s.Start != 135 {
			t.Errorf("slot %+v length = %d, want 135", s, s.End-s.Start)
		}
		if s.End > 1020 {
			t.Errorf("slot %+v extends past the working window", s)
		}
	}
}

func TestComputeSlotsEmptyResults(t *testing.T) {
	engine, bookings, _, shifts := newTestEngine()

	// bea is booked solid for the day.
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID: "b0", ProviderID: "bea", ClientID: "c1", Date: testDate,
		Start: 540, End: 1020, Status: models.BookingStatusConfirmed,
	})
	// anna does not work that day.
	shifts.configs["anna"].Overrides = map[string]models.DayConfig{
		testDate: {Closed: true},
	}

	tests := []struct {
		name       string
		providerID string
		date       string
		services   []string
		wantErrMsg string
	}{
		{"unknown provider", "ghost", testDate, []string{"manicure"}, reasonUnknownProvider},
		{"inactive provider", "cleo", testDate, []string{"manicure"}, reasonUnknownProvider},
		{"incapable provider", "bea", testDate, []string{"pedicure"}, reasonNotCapable},
		{"provider off that day", "anna", testDate, []string{"manicure"}, msgNoScheduleForDay},
		{"provider fully booked", "bea", testDate, []string{"manicure"}, msgFullyBooked},
		{"salon closed sunday", "anna", "2026-03-15", []string{"manicure"}, msgSalonClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.ComputeSlots(context.Background(), tt.providerID, tt.date, tt.services)
			if err != nil {
				t.Fatalf("ComputeSlots: %v", err)
			}
			if len(res.Slots) != 0 {
				t.Errorf("expected no slots, got %v", res.Slots)
			}
			if res.AvailabilityError != tt.wantErrMsg {
				t.Errorf("availability error = %q, want %q", res.AvailabilityError, tt.wantErrMsg)
			}
		})
	}
}

func TestComputeSlotsTodayFilter(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	today := testNow.Format(models.DateLayout)

	// Move the clock to 11:30; starts at or before it must vanish.
	engine.Now = func() time.Time {
		return time.Date(2026, 3, 9, 11, 30, 0, 0, time.UTC)
	}

	res, err := engine.ComputeSlots(context.Background(), "anna", today, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	want := []int{720, 780, 840, 900, 960}
	if !equalInts(slotStarts(res.Slots), want) {
		t.Errorf("starts = %v, want %v", slotStarts(res.Slots), want)
	}
}

func TestComputeSlotsAnyProviderMergesAndSorts(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	res, err := engine.ComputeSlots(context.Background(), models.AnyProviderID, testDate, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	// anna and bea both offer 8 starts; cleo is inactive.
	if len(res.Slots) != 16 {
		t.Fatalf("len(slots) = %d, want 16", len(res.Slots))
	}
	for i := 1; i < len(res.Slots); i++ {
		prev, cur := res.Slots[i-1], res.Slots[i]
		if cur.Start < prev.Start {
			t.Fatalf("slots not sorted by start: %+v before %+v", prev, cur)
		}
		if cur.Start == prev.Start && cur.ProviderID < prev.ProviderID {
			t.Fatalf("tie not broken by provider id: %+v before %+v", prev, cur)
		}
	}
	// First pair shares the earliest start, anna before bea.
	if res.Slots[0].ProviderID != "anna" || res.Slots[1].ProviderID != "bea" {
		t.Errorf("first two slots = %+v, %+v", res.Slots[0], res.Slots[1])
	}
}

func TestComputeSlotsAnyProviderSkipsIncapable(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	res, err := engine.ComputeSlots(context.Background(), models.AnyProviderID, testDate, []string{"pedicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	for _, s := range res.Slots {
		if s.ProviderID != "anna" {
			t.Errorf("slot %+v offered by incapable provider", s)
		}
	}
	if len(res.Slots) == 0 {
		t.Error("expected anna's slots")
	}
}

func TestComputeSlotsAnyProviderEmptyMessaging(t *testing.T) {
	engine, bookings, _, shifts := newTestEngine()

	// Nobody capable works: both capable providers off that day.
	shifts.configs["anna"].Overrides = map[string]models.DayConfig{testDate: {Closed: true}}
	shifts.configs["bea"].Overrides = map[string]models.DayConfig{testDate: {Closed: true}}

	res, err := engine.ComputeSlots(context.Background(), models.AnyProviderID, testDate, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if res.AvailabilityError != msgNoProviderSchedule {
		t.Errorf("availability error = %q, want %q", res.AvailabilityError, msgNoProviderSchedule)
	}

	// Now they work but are booked solid: the message must change.
	shifts.configs["anna"].Overrides = nil
	shifts.configs["bea"].Overrides = nil
	for _, id := range []string{"anna", "bea"} {
		bookings.bookings = append(bookings.bookings, models.Booking{
			ID: "blk-" + id, ProviderID: id, ClientID: "c1", Date: testDate,
			Start: 540, End: 1020, Status: models.BookingStatusConfirmed,
		})
	}

	res, err = engine.ComputeSlots(context.Background(), models.AnyProviderID, testDate, []string{"manicure"})
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if res.AvailabilityError != msgFullyBooked {
		t.Errorf("availability error = %q, want %q", res.AvailabilityError, msgFullyBooked)
	}
}
