package utils

import (
	"errors"
	"shifa-service/internal/pkg/exceptions"
	"time"
)

// dateLayouts accepted for date-bearing inputs, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, exceptions.ErrCannotParseDate(errors.New("unsupported date format: " + value))
}
