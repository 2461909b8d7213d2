package bodyfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeValueString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1625838778", (&TimeValue{Seconds: 1625838778}).String())
	assert.Equal("1625838778.241698",
		(&TimeValue{Seconds: 1625838778, Fraction: "241698"}).String())
	assert.Equal("0", (&TimeValue{}).String())

	// The sign applies to the whole value: -1.5 is one and a half
	// seconds before the epoch.
	assert.Equal("-1.5",
		(&TimeValue{Negative: true, Seconds: 1, Fraction: "5"}).String())
	assert.Equal("-0.75",
		(&TimeValue{Negative: true, Seconds: 0, Fraction: "75"}).String())

	// Fractional digits are preserved verbatim, including trailing
	// and leading zeros.
	assert.Equal("10.050",
		(&TimeValue{Seconds: 10, Fraction: "050"}).String())
}

func TestParseTimeValue(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"0",
		"1625838778",
		"1625838778.2416987",
		"-1.5",
		"-0.75",
		"-86400",
		"10.050",
		"3.000",
	} {
		parsed, err := ParseTimeValue(text)
		assert.NoError(err, text)
		assert.Equal(text, parsed.String())
	}

	parsed, err := ParseTimeValue("-1.5")
	assert.NoError(err)
	assert.Equal(&TimeValue{Negative: true, Seconds: 1, Fraction: "5"}, parsed)

	for _, text := range []string{
		"",
		"-",
		".5",
		"1.",
		"1.2.3",
		"1a",
		"+5",
		"01",
		"1. 5",
		"--1",
	} {
		_, err := ParseTimeValue(text)
		assert.Error(err, text)
	}
}

func TestNewTimeValue(t *testing.T) {
	assert := assert.New(t)

	ts := NewTimeValue(time.Unix(1625838778, 241698700), PrecisionMicrosecond)
	assert.Equal("1625838778.241698", ts.String())

	ts = NewTimeValue(time.Unix(1625838778, 241698700), Precision100Nanosecond)
	assert.Equal("1625838778.2416987", ts.String())

	ts = NewTimeValue(time.Unix(1625838778, 241698700), PrecisionSecond)
	assert.Equal("1625838778", ts.String())

	// time.Unix(-1, 250000000) is 0.75 seconds before the epoch.
	ts = NewTimeValue(time.Unix(-1, 250000000), 2)
	assert.Equal("-0.75", ts.String())

	ts = NewTimeValue(time.Unix(-2, 500000000), PrecisionMillisecond)
	assert.Equal("-1.500", ts.String())

	ts = NewTimeValue(time.Unix(-86400, 0), PrecisionSecond)
	assert.Equal("-86400", ts.String())
}

func TestTimeValueTime(t *testing.T) {
	assert := assert.New(t)

	parsed, err := ParseTimeValue("-0.75")
	assert.NoError(err)
	assert.Equal(time.Unix(-1, 250000000).UTC(), parsed.Time().UTC())

	parsed, err = ParseTimeValue("1625838778.2416987")
	assert.NoError(err)
	assert.Equal(time.Unix(1625838778, 241698700).UTC(), parsed.Time().UTC())
}
