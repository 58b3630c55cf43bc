package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
	"unicode/utf8"
)

// GenerateRandomString returns a URL-safe, base64 encoded string
// built from n securely generated random bytes.
func GenerateRandomString(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("random string size must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// CalendarDaysBetween counts midnight crossings from a to b in loc.
// Negative when b is on an earlier day than a.
func CalendarDaysBetween(a, b time.Time, loc *time.Location) int {
	da, db := DayStart(a, loc), DayStart(b, loc)
	// dates built in UTC avoid DST making a day 23 or 25 hours long
	ua := time.Date(da.Year(), da.Month(), da.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(db.Year(), db.Month(), db.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// TruncateRunes cuts s to at most n characters, never splitting a multi-byte one.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
