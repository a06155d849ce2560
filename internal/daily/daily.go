package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// FirstDate is the earliest date a daily puzzle is served for.
const FirstDate = "2025-01-01"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Seed returns the generator seed for a date: HMAC-SHA256(salt, YYYY-MM-DD),
// first 8 bytes, as a positive int64. It is never 0, which generators treat
// as "seed from the clock".
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
	if n == 0 {
		return 1
	}
	return n
}
