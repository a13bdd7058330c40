package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is how journal times are stored: UTC, second precision,
// the same text SQLite's CURRENT_TIMESTAMP produces.
const TimestampLayout = time.DateTime

// Timestamp is a time.Time persisted as TimestampLayout text.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to UTC and drops sub-second precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

// GormDataType tells gorm the column type.
func (Timestamp) GormDataType() string {
	return "datetime"
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.UTC().Format(TimestampLayout), nil
}

// Scan implements sql.Scanner. The driver hands DATETIME columns back either
// as time.Time or as raw text.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp value %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	parsed, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
