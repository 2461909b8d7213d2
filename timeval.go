package bodyfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fractional digit counts for the common source timestamp precisions.
const (
	PrecisionSecond        = 0
	PrecisionMillisecond   = 3
	PrecisionMicrosecond   = 6
	Precision100Nanosecond = 7
	PrecisionNanosecond    = 9
)

// TimeValue is a signed epoch timestamp with a variable number of
// fractional digits. The minus sign applies to the value as a whole,
// so -1.5 means one and a half seconds before the epoch and is stored
// as Negative=true, Seconds=1, Fraction="5". The fractional digits
// round trip verbatim - they carry precision information.
type TimeValue struct {
	Negative bool
	Seconds  uint64
	Fraction string
}

// NewTimeValue converts a time.Time, truncating the nanoseconds to
// the requested number of fractional digits. Pre-epoch values are
// normalized so the whole value carries the sign.
func NewTimeValue(t time.Time, fractional_digits int) *TimeValue {
	sec := t.Unix()
	nsec := int64(t.Nanosecond())

	// time.Time splits as floor(seconds) + non negative nanoseconds.
	if sec < 0 && nsec > 0 {
		sec++
		nsec -= 1000000000
	}

	result := &TimeValue{}
	if sec < 0 || nsec < 0 {
		result.Negative = true
		sec = -sec
		nsec = -nsec
	}
	result.Seconds = uint64(sec)

	if fractional_digits > 0 {
		digits := fmt.Sprintf("%09d", nsec)
		for len(digits) < fractional_digits {
			digits += "0"
		}
		result.Fraction = digits[:fractional_digits]
	}
	return result
}

// Time converts back to a time.Time. Fractional digits beyond
// nanosecond precision are dropped.
func (self *TimeValue) Time() time.Time {
	digits := self.Fraction
	if len(digits) > 9 {
		digits = digits[:9]
	}
	nsec := int64(0)
	for _, c := range []byte(digits) {
		nsec = nsec*10 + int64(c-'0')
	}
	for i := len(digits); i < 9; i++ {
		nsec *= 10
	}

	sec := int64(self.Seconds)
	if self.Negative {
		sec = -sec
		nsec = -nsec
	}
	return time.Unix(sec, nsec)
}

func (self *TimeValue) String() string {
	result := strings.Builder{}
	if self.Negative {
		result.WriteByte('-')
	}
	result.WriteString(strconv.FormatUint(self.Seconds, 10))
	if self.Fraction != "" {
		result.WriteByte('.')
		result.WriteString(self.Fraction)
	}
	return result.String()
}

func isDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return len(text) > 0
}

// isCanonicalUint accepts only the unique decimal rendering of an
// unsigned integer - no sign, no leading zeros.
func isCanonicalUint(text string) bool {
	if !isDigits(text) {
		return false
	}
	return text == "0" || text[0] != '0'
}

// ParseTimeValue parses a timestamp field. The seconds component must
// be in canonical decimal form so that re-encoding reproduces the
// input bytes; the fractional digits are kept exactly as written.
func ParseTimeValue(text string) (*TimeValue, error) {
	if text == "" {
		return nil, errors.New("empty timestamp")
	}

	result := &TimeValue{}
	rest := text
	if rest[0] == '-' {
		result.Negative = true
		rest = rest[1:]
	}

	int_part := rest
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		int_part = rest[:idx]
		result.Fraction = rest[idx+1:]

		// A second '.' makes the fraction non numeric and is
		// rejected here as well.
		if !isDigits(result.Fraction) {
			return nil, fmt.Errorf(
				"invalid fractional digits in timestamp %q", text)
		}
	}

	if !isCanonicalUint(int_part) {
		return nil, fmt.Errorf("invalid timestamp %q", text)
	}

	seconds, err := strconv.ParseUint(int_part, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %v", text, err)
	}
	result.Seconds = seconds

	return result, nil
}
