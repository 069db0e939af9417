// Tests for the time, date, and weekday calculator.
package clock

import (
	"strings"
	"testing"
	"time"
)

// christmas2024 is a Wednesday.
var christmas2024 = time.Date(2024, time.December, 25, 14, 30, 0, 0, time.UTC)

func fixedClock(now time.Time) *Clock {
	return New(WithNow(func() time.Time { return now }))
}

func TestTimeKnownZones(t *testing.T) {
	c := fixedClock(christmas2024)
	cases := map[string]string{
		"london":   "🇬🇧 The time in London is 14:30",
		"London":   "🇬🇧 The time in London is 14:30",
		"new york": "🇺🇸 The time in New York is 09:30",
		"Sydney":   "🇦🇺 The time in Sydney is 01:30",
		"NAIROBI":  "🇰🇪 The time in Nairobi is 17:30",
		"tokyo":    "🇯🇵 The time in Tokyo is 23:30",
		"delhi":    "🇮🇳 The time in Delhi is 20:00",
	}
	for in, want := range cases {
		if got := c.Time(in); got != want {
			t.Fatalf("Time(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTimeLocalUsesMachineClock(t *testing.T) {
	local := time.Date(2024, time.December, 25, 8, 5, 0, 0, time.FixedZone("test", -6*3600))
	c := fixedClock(local)
	if got, want := c.Time("Local"), "🏠 The local time is 08:05"; got != want {
		t.Fatalf("Time(local) = %q, want %q", got, want)
	}
}

func TestTimeUnknownLocation(t *testing.T) {
	c := fixedClock(christmas2024)
	want := "❓ ❌ Sorry, I don't know the timezone for unknown-place"
	if got := c.Time("unknown-place"); got != want {
		t.Fatalf("Time(unknown) = %q, want %q", got, want)
	}
}

func TestDateToday(t *testing.T) {
	c := fixedClock(christmas2024)
	if got, want := c.Date("Today"), "📅 Today's date is 12/25/2024"; got != want {
		t.Fatalf("Date(today) = %q, want %q", got, want)
	}
}

// TestDateSameWeekdayIsToday checks every weekday name against a clock set to that weekday.
func TestDateSameWeekdayIsToday(t *testing.T) {
	monday := time.Date(2024, time.December, 23, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		now := monday.AddDate(0, 0, i)
		c := fixedClock(now)
		name := now.Weekday().String()

		got := c.Date(strings.ToLower(name))
		want := "📅 " + name + " (today) is " + now.Format("01/02/2006")
		if got != want {
			t.Fatalf("Date(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDateRelativeWeekdays(t *testing.T) {
	c := fixedClock(christmas2024)
	cases := map[string]string{
		"monday":   "📅 Last Monday was 12/23/2024",
		"Tuesday":  "📅 Last Tuesday was 12/24/2024",
		"friday":   "📅 Next Friday is 12/27/2024",
		"sunday":   "📅 Next Sunday is 12/29/2024",
		"Thursday": "📅 Next Thursday is 12/26/2024",
	}
	for in, want := range cases {
		if got := c.Date(in); got != want {
			t.Fatalf("Date(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDateUnknownDay(t *testing.T) {
	c := fixedClock(christmas2024)
	if got := c.Date("someday"); got != dateUnknownMessage {
		t.Fatalf("Date(someday) = %q", got)
	}
}

func TestDay(t *testing.T) {
	c := fixedClock(christmas2024)
	cases := map[string]string{
		"12/25/2024": "📅 12/25/2024 falls on a Wednesday",
		"1/5/2024":   "📅 1/5/2024 falls on a Friday",
		"02/29/2024": "📅 02/29/2024 falls on a Thursday",
		"13/40/2024": dayFormatMessage,
		"02/30/2024": dayFormatMessage,
		"2024-12-25": dayFormatMessage,
		"":           dayFormatMessage,
	}
	for in, want := range cases {
		if got := c.Day(in); got != want {
			t.Fatalf("Day(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToday(t *testing.T) {
	if got := fixedClock(christmas2024).Today(); got != "12/25/2024" {
		t.Fatalf("Today() = %q", got)
	}
}
