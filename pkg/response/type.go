package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date renders as DateFormat in the time's own location.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseQuoted(b, DateFormat)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime renders as DateTimeFormat in the time's own location, so a
// timestamp taken in the router's timezone keeps its wall clock.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseQuoted(b, DateTimeFormat)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

func parseQuoted(b []byte, layout string) (time.Time, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, fmt.Errorf("response: expected a string: %w", err)
	}
	return time.Parse(layout, s)
}
