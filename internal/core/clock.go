package core

import "time"

// ISOLocalLayout is ISO-8601 local time with microseconds and no offset,
// e.g. 2024-01-01T13:04:05.123456.
const ISOLocalLayout = "2006-01-02T15:04:05.000000"

func FormatLocal(t time.Time) string {
	return t.Local().Format(ISOLocalLayout)
}

func ParseLocal(s string) (time.Time, error) {
	return time.ParseInLocation(ISOLocalLayout, s, time.Local)
}
