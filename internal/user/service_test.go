package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextStreakFirstMeetup(t *testing.T) {
	require.Equal(t, 1, nextStreak(0, nil, day("2026-08-31")))
}

func TestNextStreakSameDayIsIdempotent(t *testing.T) {
	last := day("2026-08-31")
	require.Equal(t, 4, nextStreak(4, &last, day("2026-08-31")))
}

func TestNextStreakNewDayIncrementsByOne(t *testing.T) {
	last := day("2026-08-30")
	require.Equal(t, 5, nextStreak(4, &last, day("2026-08-31")))
}

func TestMergeProfilesDeduplicatesByID(t *testing.T) {
	a := []Profile{{ID: "1", Username: "ana"}, {ID: "2", Username: "bo"}}
	b := []Profile{{ID: "2", Username: "bo"}, {ID: "3", Username: "cy"}}

	got := mergeProfiles(a, b)
	require.Len(t, got, 3)
	require.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestMergeProfilesEmptyInputs(t *testing.T) {
	require.Empty(t, mergeProfiles(nil, nil))
}
