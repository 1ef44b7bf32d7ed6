package filters

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFilters_TypedInstant(t *testing.T) {
	when := time.Date(2011, time.April, 24, 20, 34, 46, 0, time.FixedZone("", 8*3600))

	short, err := DateToString(when)
	require.NoError(t, err)
	assert.Equal(t, "24 Apr 2011", short)

	long, err := DateToLongString(when)
	require.NoError(t, err)
	assert.Equal(t, "24 April 2011", long)

	xmlschema, err := DateToXMLSchema(when)
	require.NoError(t, err)
	assert.Equal(t, "2011-04-24T20:34:46+08:00", xmlschema)

	rfc822, err := DateToRFC822(when.UTC())
	require.NoError(t, err)
	assert.Equal(t, "Sun, 24 Apr 2011 12:34:46 +0000", rfc822)
}

func TestDateFilters_StringInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "iso date", input: "2011-01-27", want: "27 Jan 2011"},
		{name: "iso datetime", input: "2011-01-27T10:00:00Z", want: "27 Jan 2011"},
		{name: "us style", input: "Jan 27, 2011", want: "27 Jan 2011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateToString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateFilters_PointerInstant(t *testing.T) {
	when := time.Date(2011, time.January, 27, 0, 0, 0, 0, time.UTC)

	got, err := DateToLongString(&when)
	require.NoError(t, err)
	assert.Equal(t, "27 January 2011", got)
}

func TestDateToXMLSchema_RoundTrip(t *testing.T) {
	when := time.Date(2011, time.April, 24, 20, 34, 46, 0, time.FixedZone("", 8*3600))

	out, err := DateToXMLSchema(when)
	require.NoError(t, err)

	back, err := coerceTime(out)
	require.NoError(t, err)
	assert.True(t, back.Equal(when), "re-parsed instant differs: %v vs %v", back, when)
}

func TestDateFilters_MalformedString(t *testing.T) {
	_, err := DateToString("not a date at all")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateParse)

	_, err = DateToRFC822("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateParse)
}

// A non-date, non-string value must abort the rendering process. The exit
// hook is swapped so the test can observe the termination request.
func TestDateFilters_InvalidTypeAborts(t *testing.T) {
	var code = -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	_, err := DateToString(42)
	assert.Equal(t, 1, code, "expected the filter to request process termination")
	require.Error(t, err)
}
