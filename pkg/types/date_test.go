package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_AddMonthsClampsToMonthEnd(t *testing.T) {
	assert.Equal(t, "2025-02-28", MustParseDate("2025-01-31").AddMonths(1).String())
	assert.Equal(t, "2024-02-29", MustParseDate("2024-01-31").AddMonths(1).String())
	assert.Equal(t, "2026-01-15", MustParseDate("2025-07-15").AddMonths(6).String())
}

func TestDate_DaysUntilAndWeekend(t *testing.T) {
	mon := MustParseDate("2025-06-02")
	assert.Equal(t, time.Monday, mon.Weekday())
	assert.Equal(t, 5, mon.DaysUntil(mon.AddDays(5)))
	assert.False(t, mon.IsWeekend())
	assert.True(t, mon.AddDays(5).IsWeekend())
	assert.True(t, mon.AddDays(6).IsWeekend())
}

func TestDate_DateOfDropsClock(t *testing.T) {
	loc := time.FixedZone("AEST", 10*60*60)
	d := DateOf(time.Date(2025, 6, 2, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-06-02", d.String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		From Date  `json:"from"`
		To   *Date `json:"to,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2025-06-02"}`), &p))
	assert.True(t, p.From.Equal(NewDate(2025, time.June, 2)))
	assert.Nil(t, p.To)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"2025-06-02"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"from":"02/06/2025"}`), &p))
}
