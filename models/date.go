package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// The provider reports acceptance timestamps with a time component, filing and
// statement dates without one.
var dateLayouts = []string{DateLayout, "2006-01-02 15:04:05", time.RFC3339}

// Date is a calendar date. It is stored in a date column and serialized as
// YYYY-MM-DD.
type Date struct {
	datatypes.Date
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// ParseDate parses "2023-09-30", "2023-11-02 18:08:27" or an RFC 3339
// timestamp and drops the time of day.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q is not a date", ErrInvalidFieldValue, s)
}

func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s is not a date", ErrInvalidFieldValue, string(b))
	}

	if s == "" {
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
