package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseReleaseDate accepts RFC 3339, 2006-01-02 or Unix epoch milliseconds.
// Anything else yields the zero time, which never counts as a recent release.
func ParseReleaseDate(value any) time.Time {
	switch v := value.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return v
	case int:
		return fromMillis(int64(v))
	case int64:
		return fromMillis(v)
	case float64:
		return fromMillis(int64(v))
	}

	str := strings.TrimSpace(fmt.Sprint(value))
	if str == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t
	}
	if t, err := time.Parse(dateLayout, str); err == nil {
		return t
	}
	if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
		return fromMillis(ms)
	}
	return time.Time{}
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
