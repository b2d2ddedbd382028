package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:05")
	require.NoError(t, err)
	assert.Equal(t, "14:05", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("2pm")
	assert.Error(t, err)
}

func TestTimeString_ToTime(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	ts := TimeString("10:30")
	got, err := ts.ToTime(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 10, 30, 0, 0, time.UTC), got)

	_, err = TimeString("bad").ToTime(day)
	assert.Error(t, err)
}

func TestTimeString_UnmarshalJSON(t *testing.T) {
	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"09:00"`), &ts))
	assert.Equal(t, "09:00", ts.String())

	assert.Error(t, json.Unmarshal([]byte(`"9am"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}
