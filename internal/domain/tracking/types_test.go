package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakType_Classify(t *testing.T) {
	t.Parallel()

	attendance := []BreakType{TypePunchIn, TypePunchOut}
	regular := []BreakType{TypeShort, TypeLunch, TypeMeeting, TypeHuddle, TypeEmergency}
	workingTime := []BreakType{TypeCoaching, TypeTeamLeaderMeeting, TypeOvertime, TypeCompensation}

	for _, bt := range attendance {
		assert.Equal(t, ClassAttendance, bt.Classify(), string(bt))
		assert.True(t, bt.IsAttendance(), string(bt))
	}
	for _, bt := range regular {
		assert.Equal(t, ClassRegular, bt.Classify(), string(bt))
		assert.False(t, bt.IsAttendance(), string(bt))
	}
	for _, bt := range workingTime {
		assert.Equal(t, ClassWorkingTime, bt.Classify(), string(bt))
		assert.False(t, bt.IsAttendance(), string(bt))
	}
}

func TestBreakType_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, TypeLunch.IsValid())
	assert.True(t, TypeCompensation.IsValid())
	assert.False(t, BreakType("siesta").IsValid())
	assert.False(t, BreakType("").IsValid())
}

func TestBreakType_UnknownClassifiesAsRegular(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ClassRegular, BreakType("siesta").Classify())
}

func TestDefaultAllowedDurations_CoverRegularTypes(t *testing.T) {
	t.Parallel()

	for bt, class := range classes {
		if class == ClassRegular {
			assert.Contains(t, DefaultAllowedDurations, bt, string(bt))
		}
	}
}
