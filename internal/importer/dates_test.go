package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateFormats(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"iso", "2024-03-15", date(2024, time.March, 15)},
		{"us slash", "3/15/2024", date(2024, time.March, 15)},
		{"us dash", "03-15-2024", date(2024, time.March, 15)},
		{"dotted", "3.15.2024", date(2024, time.March, 15)},
		{"day first when month impossible", "15/03/2024", date(2024, time.March, 15)},
		{"two digit year below pivot", "3/15/24", date(2024, time.March, 15)},
		{"two digit year above pivot", "3/15/97", date(1997, time.March, 15)},
		{"textual long", "March 15, 2024", date(2024, time.March, 15)},
		{"textual short", "Mar 15, 2024", date(2024, time.March, 15)},
		{"workbook serial", "45366", date(2024, time.March, 15)},
		{"unix milliseconds", "1710460800000", date(2024, time.March, 15)},
		{"surrounding whitespace", "  2024-03-15  ", date(2024, time.March, 15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDate(tc.value)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, v := range []string{
		"",
		"n/a",
		"soon",
		"13/45/2024",  // no valid month/day reading
		"2/30/2024",   // February 30th does not exist
		"99999999999", // too long for a serial, too short for millis
		"0",
	} {
		assert.Nil(t, ParseDate(v), "value %q", v)
	}
}

func TestParseDateUnixMillisOutOfRange(t *testing.T) {
	// Parses as milliseconds but lands outside any plausible year.
	assert.Nil(t, ParseDate("9999999999999999"))
}

func TestParseDateOr(t *testing.T) {
	fallback := date(2030, time.January, 1)
	assert.Equal(t, date(2024, time.March, 15), ParseDateOr("2024-03-15", fallback))
	assert.Equal(t, fallback, ParseDateOr("not a date", fallback))
	assert.Equal(t, fallback, ParseDateOr("", fallback))
}
