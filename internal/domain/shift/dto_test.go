package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShiftRequest_Window_SameDay(t *testing.T) {
	t.Parallel()

	req := CreateShiftRequest{
		AgentID:   "a1",
		ShiftDate: "2025-06-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	start, end, err := req.Window()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC), end)
}

func TestCreateShiftRequest_Window_OvernightRollover(t *testing.T) {
	t.Parallel()

	// End clock at or before start rolls onto the next day.
	req := CreateShiftRequest{
		AgentID:   "a1",
		ShiftDate: "2025-06-02",
		StartTime: "22:00",
		EndTime:   "06:00",
	}

	start, end, err := req.Window()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 3, 6, 0, 0, 0, time.UTC), end)
}

func TestCreateShiftRequest_Window_ExplicitEndDate(t *testing.T) {
	t.Parallel()

	req := CreateShiftRequest{
		AgentID:   "a1",
		ShiftDate: "2025-06-02",
		StartTime: "22:00",
		EndTime:   "06:00",
		EndDate:   "2025-06-03",
	}

	start, end, err := req.Window()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 3, 6, 0, 0, 0, time.UTC), end)
}

func TestCreateShiftRequest_Window_ExplicitEndDateBeforeStart(t *testing.T) {
	t.Parallel()

	req := CreateShiftRequest{
		AgentID:   "a1",
		ShiftDate: "2025-06-02",
		StartTime: "09:00",
		EndTime:   "08:00",
		EndDate:   "2025-06-02",
	}

	_, _, err := req.Window()
	assert.ErrorIs(t, err, ErrInvalidShift)
}

func TestCreateShiftRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateShiftRequest{
		AgentID:   "a1",
		ShiftDate: "2025-06-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	assert.NoError(t, req.Validate())

	bad := CreateShiftRequest{
		ShiftDate: "06/02/2025",
		StartTime: "9am",
		EndTime:   "17:00",
	}
	assert.Error(t, bad.Validate())
}

func TestShift_IsOvernight(t *testing.T) {
	t.Parallel()

	day := func(d, h int) time.Time { return time.Date(2025, 6, d, h, 0, 0, 0, time.UTC) }

	assert.False(t, Shift{StartAt: day(2, 9), EndAt: day(2, 17)}.IsOvernight())
	assert.True(t, Shift{StartAt: day(2, 22), EndAt: day(3, 6)}.IsOvernight())
}
