// Package clock answers time, date, and weekday questions from fixed tables and the system clock.
package clock

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "01/02/2006"
	// parseLayout accepts one- or two-digit month and day.
	parseLayout = "1/2/2006"

	dateUnknownMessage = "❌ I can only determine dates for today or named days of the week."
	dayFormatMessage   = "❌ Please enter a date in MM/DD/YYYY format (e.g., 12/25/2024)"
)

// weekdays maps names to Monday-based indexes.
var weekdays = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// Clock holds the zone table and time source.
type Clock struct {
	now   func() time.Time
	zones map[string]Zone
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		if now != nil {
			c.now = now
		}
	}
}

// WithZones replaces the zone table.
func WithZones(zones []Zone) Option {
	return func(c *Clock) {
		if len(zones) > 0 {
			c.zones = indexZones(zones)
		}
	}
}

// New returns a Clock using the machine clock and the built-in zones.
func New(opts ...Option) *Clock {
	c := &Clock{
		now:   time.Now,
		zones: indexZones(DefaultZones()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func indexZones(zones []Zone) map[string]Zone {
	m := make(map[string]Zone, len(zones))
	for _, z := range zones {
		m[strings.ToLower(z.Name)] = z
	}
	return m
}

// Time reports the current time at location. Unknown locations get a not-found message.
func (c *Clock) Time(location string) string {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == LocalZone {
		now := c.now()
		return fmt.Sprintf("🏠 The local time is %02d:%02d", now.Hour(), now.Minute())
	}
	z, ok := c.zones[key]
	if !ok {
		return fmt.Sprintf("❓ ❌ Sorry, I don't know the timezone for %s", location)
	}
	t := c.now().UTC().Add(z.Offset())
	return fmt.Sprintf("%s The time in %s is %02d:%02d", z.Emoji, z.Name, t.Hour(), t.Minute())
}

// Date reports the date of today or of a named weekday in the current week.
// The day offset is target minus today without wrapping, so earlier weekdays
// resolve to the past and later ones to the future.
func (c *Clock) Date(day string) string {
	today := c.now()
	day = strings.ToLower(strings.TrimSpace(day))
	if day == "today" {
		return fmt.Sprintf("📅 Today's date is %s", today.Format(dateLayout))
	}
	target, ok := weekdays[day]
	if !ok {
		return dateUnknownMessage
	}

	offset := target - mondayIndex(today.Weekday())
	date := today.AddDate(0, 0, offset).Format(dateLayout)
	name := strings.ToUpper(day[:1]) + day[1:]
	switch {
	case offset == 0:
		return fmt.Sprintf("📅 %s (today) is %s", name, date)
	case offset > 0:
		return fmt.Sprintf("📅 Next %s is %s", name, date)
	default:
		return fmt.Sprintf("📅 Last %s was %s", name, date)
	}
}

// Day reports the weekday of an MM/DD/YYYY date. It never fails: a bad date
// yields a format hint.
func (c *Clock) Day(date string) string {
	t, err := time.Parse(parseLayout, date)
	if err != nil {
		return dayFormatMessage
	}
	return fmt.Sprintf("📅 %s falls on a %s", date, t.Weekday())
}

// Today returns the current date as MM/DD/YYYY.
func (c *Clock) Today() string {
	return c.now().Format(dateLayout)
}

func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
