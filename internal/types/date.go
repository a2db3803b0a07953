package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts are the formats accepted for from/to dates
var DateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a calendar date or an RFC 3339 timestamp
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ParseOptionalDate is ParseDate that maps an empty value to nil
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
