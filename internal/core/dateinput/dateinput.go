// Package dateinput classifies the date argument into one of three input shapes
// Check order is fixed: the literal "now", then a base-10 integer, then RFC3339
package dateinput

import (
	"strconv"
	"time"

	perr "dconv/internal/platform/errors"
)

// NowToken is the literal that selects the current instant
const NowToken = "now"

// Kind tags how an Input was recognised
// Nothing downstream branches on it; it is kept for logs and API responses
type Kind uint8

const (
	// KindDateTime is an RFC3339 string
	KindDateTime Kind = iota + 1
	// KindTimestamp is a Unix epoch integer
	KindTimestamp
	// KindNow is the NowToken
	KindNow
)

func (k Kind) String() string {
	switch k {
	case KindDateTime:
		return "datetime"
	case KindTimestamp:
		return "timestamp"
	case KindNow:
		return "now"
	default:
		return "unknown"
	}
}

// Precision is the unit of an epoch timestamp, chosen by digit count
type Precision uint8

const (
	// PrecisionNone is used for non-timestamp inputs
	PrecisionNone Precision = iota
	PrecisionSeconds
	PrecisionMillis
	PrecisionMicros
	PrecisionNanos
)

func (p Precision) String() string {
	switch p {
	case PrecisionSeconds:
		return "s"
	case PrecisionMillis:
		return "ms"
	case PrecisionMicros:
		return "us"
	case PrecisionNanos:
		return "ns"
	default:
		return ""
	}
}

// precisionByLen maps a timestamp's character count to its unit
var precisionByLen = map[int]Precision{
	10: PrecisionSeconds,
	13: PrecisionMillis,
	16: PrecisionMicros,
	19: PrecisionNanos,
}

// Input is a classified date argument; At is always in UTC
type Input struct {
	Kind      Kind
	Precision Precision
	At        time.Time
}

// bounds of what RFC3339 can print (four digit years)
// No 10/13/16/19 character int64 gets past them; fromEpoch keeps the check for any other caller
var (
	minInstant = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// Classify resolves raw into an Input; now is used only for the NowToken
// raw is matched byte for byte, nothing is trimmed or folded
func Classify(raw string, now time.Time) (Input, error) {
	if raw == NowToken {
		return Input{Kind: KindNow, At: now.UTC()}, nil
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return fromEpoch(v, len(raw))
	}

	t, err := parseRFC3339(raw)
	if err != nil {
		return Input{}, perr.Newf(perr.ErrorCodeUnsupportedDateValue, "Unsupported date value '%s'", raw)
	}
	return Input{Kind: KindDateTime, At: t.UTC()}, nil
}

// parseRFC3339 is time.Parse plus leap seconds
// A seconds field of 60 resolves to the first instant of the following second
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	if len(s) > 19 && s[10] == 'T' && s[16] == ':' && s[17:19] == "60" {
		if t, lerr := time.Parse(time.RFC3339, s[:17]+"59"+s[19:]); lerr == nil {
			return t.Add(time.Second), nil
		}
	}
	return time.Time{}, err
}

// fromEpoch builds a timestamp Input; size is the character count of the digits (sign included)
func fromEpoch(v int64, size int) (Input, error) {
	p, ok := precisionByLen[size]
	if !ok {
		return Input{}, perr.Newf(perr.ErrorCodeUnsupportedTimestampLength, "Timestamp of size %d is not supported", size)
	}

	var t time.Time
	switch p {
	case PrecisionSeconds:
		t = time.Unix(v, 0)
	case PrecisionMillis:
		t = time.UnixMilli(v)
	case PrecisionMicros:
		t = time.UnixMicro(v)
	case PrecisionNanos:
		t = time.Unix(0, v)
	}
	t = t.UTC()

	if t.Before(minInstant) || t.After(maxInstant) {
		return Input{}, perr.Newf(perr.ErrorCodeTimestampOutOfRange, "Timestamp %d is out of range", v)
	}
	return Input{Kind: KindTimestamp, Precision: p, At: t}, nil
}
