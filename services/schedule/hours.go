package schedule

import (
	"fmt"
	"strings"
	"time"

	"glowbook/models"
	"glowbook/utils"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseSalonHours builds SalonHours from the config representation:
// weekday name -> "HH:MM-HH:MM" range strings. Weekdays absent from the
// map are closed.
func ParseSalonHours(raw map[string][]string) (models.SalonHours, error) {
	hours := models.SalonHours{}
	for name, ranges := range raw {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in salon hours", name)
		}
		var intervals []models.Interval
		for _, rng := range ranges {
			parts := strings.SplitN(rng, "-", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid salon hours range %q", rng)
			}
			from, err := utils.ParseClock(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, fmt.Errorf("invalid salon hours range %q: %w", rng, err)
			}
			to, err := utils.ParseClock(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, fmt.Errorf("invalid salon hours range %q: %w", rng, err)
			}
			if from >= to {
				return nil, fmt.Errorf("salon hours range %q is empty or inverted", rng)
			}
			intervals = append(intervals, models.Interval{Start: from, End: to})
		}
		hours[wd] = Merge(intervals)
	}
	return hours, nil
}
