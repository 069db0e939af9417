package clock

import (
	"errors"
	"testing"

	"github.com/minhyannv/ai-language-go/pkg/language"
)

func TestAnswerGetTimeUsesLocationEntity(t *testing.T) {
	c := fixedClock(christmas2024)
	got, err := c.Answer(language.Prediction{
		TopIntent: IntentGetTime,
		Entities:  []language.Entity{{Category: EntityLocation, Text: "Tokyo"}},
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if want := "🇯🇵 The time in Tokyo is 23:30"; got != want {
		t.Fatalf("Answer = %q, want %q", got, want)
	}
}

func TestAnswerGetTimeDefaultsToLocal(t *testing.T) {
	c := fixedClock(christmas2024)
	got, err := c.Answer(language.Prediction{TopIntent: IntentGetTime})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if want := "🏠 The local time is 14:30"; got != want {
		t.Fatalf("Answer = %q, want %q", got, want)
	}
}

func TestAnswerGetDayDefaultsToToday(t *testing.T) {
	c := fixedClock(christmas2024)
	got, err := c.Answer(language.Prediction{TopIntent: IntentGetDay})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if want := "📅 12/25/2024 falls on a Wednesday"; got != want {
		t.Fatalf("Answer = %q, want %q", got, want)
	}
}

func TestAnswerGetDateUsesWeekdayEntity(t *testing.T) {
	c := fixedClock(christmas2024)
	got, err := c.Answer(language.Prediction{
		TopIntent: IntentGetDate,
		Entities:  []language.Entity{{Category: EntityWeekday, Text: "Friday"}},
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if want := "📅 Next Friday is 12/27/2024"; got != want {
		t.Fatalf("Answer = %q, want %q", got, want)
	}
}

func TestAnswerUnknownIntent(t *testing.T) {
	c := fixedClock(christmas2024)
	_, err := c.Answer(language.Prediction{TopIntent: "None"})
	if !errors.Is(err, ErrUnknownIntent) {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}
}
