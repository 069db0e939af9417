package clock

import (
	"errors"
	"fmt"

	"github.com/minhyannv/ai-language-go/pkg/language"
)

// Intent and entity names of the Clock conversation project.
const (
	IntentGetTime = "GetTime"
	IntentGetDay  = "GetDay"
	IntentGetDate = "GetDate"

	EntityLocation = "Location"
	EntityDate     = "Date"
	EntityWeekday  = "Weekday"
)

// ErrUnknownIntent is returned for intents the clock cannot act on.
var ErrUnknownIntent = errors.New("unknown intent")

// Answer runs the calculator selected by the predicted top intent.
func (c *Clock) Answer(p language.Prediction) (string, error) {
	switch p.TopIntent {
	case IntentGetTime:
		location := LocalZone
		if v, ok := p.EntityText(EntityLocation); ok {
			location = v
		}
		return c.Time(location), nil
	case IntentGetDay:
		date := c.Today()
		if v, ok := p.EntityText(EntityDate); ok {
			date = v
		}
		return c.Day(date), nil
	case IntentGetDate:
		day := "today"
		if v, ok := p.EntityText(EntityWeekday); ok {
			day = v
		}
		return c.Date(day), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIntent, p.TopIntent)
	}
}
