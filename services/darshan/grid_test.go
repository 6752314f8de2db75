package darshan

import (
	"testing"
	"time"

	"darshanam/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGridCount(t *testing.T) {
	cases := []struct {
		start, end, interval int
		want                 int
	}{
		{9, 18, 15, 37},
		{9, 18, 30, 19},
		{9, 18, 60, 10},
		{10, 11, 15, 5},
		{0, 23, 60, 24},
	}
	for _, tc := range cases {
		slots := SlotGrid(models.SlotGridConfig{
			StartHour:       tc.start,
			EndHour:         tc.end,
			IntervalMinutes: tc.interval,
		})
		assert.Len(t, slots, tc.want, "grid %d-%d/%d", tc.start, tc.end, tc.interval)
		assert.Equal(t, ((tc.end-tc.start)*60)/tc.interval+1, len(slots))
	}
}

func TestSlotGridOrderingAndBounds(t *testing.T) {
	slots := SlotGrid(models.DefaultSlotGrid)
	require.NotEmpty(t, slots)

	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "18:00", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i], "slots must be strictly increasing")
	}
}

func TestSlotGridInvalidConfig(t *testing.T) {
	assert.Nil(t, SlotGrid(models.SlotGridConfig{StartHour: 18, EndHour: 9, IntervalMinutes: 15}))
	assert.Nil(t, SlotGrid(models.SlotGridConfig{StartHour: 9, EndHour: 18, IntervalMinutes: 0}))
}

func TestFilterPastToday(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	date := time.Date(2025, 5, 2, 0, 0, 0, 0, loc)
	now := time.Date(2025, 5, 2, 17, 50, 0, 0, loc)

	slots := SlotGrid(models.DefaultSlotGrid)
	kept := FilterPast(slots, date, now)

	// Only 18:00 is still strictly in the future at 17:50.
	assert.Equal(t, []string{"18:00"}, kept)
}

func TestFilterPastTodayAllElapsed(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	date := time.Date(2025, 5, 2, 0, 0, 0, 0, loc)
	now := time.Date(2025, 5, 2, 18, 0, 0, 0, loc)

	// 18:00 is not strictly after 18:00.
	kept := FilterPast(SlotGrid(models.DefaultSlotGrid), date, now)
	assert.Empty(t, kept)
}

func TestFilterPastFutureDateKeepsAll(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	date := time.Date(2025, 5, 3, 0, 0, 0, 0, loc)
	now := time.Date(2025, 5, 2, 17, 50, 0, 0, loc)

	slots := SlotGrid(models.DefaultSlotGrid)
	kept := FilterPast(slots, date, now)
	assert.Equal(t, slots, kept)
}

func TestFilterPastBoundaryStrict(t *testing.T) {
	loc := time.UTC
	date := time.Date(2025, 5, 2, 0, 0, 0, 0, loc)
	now := time.Date(2025, 5, 2, 9, 0, 0, 0, loc)

	kept := FilterPast(SlotGrid(models.DefaultSlotGrid), date, now)
	require.NotEmpty(t, kept)
	// 09:00 equals now and must be dropped; 09:15 survives.
	assert.Equal(t, "09:15", kept[0])
}

func TestFormatLocalDateUsesLocalFields(t *testing.T) {
	// Late evening in a far-east zone: UTC conversion would say May 1.
	east := time.FixedZone("LINT", 14*3600)
	d := time.Date(2025, 5, 2, 0, 30, 0, 0, east)
	assert.Equal(t, "2025-05-02", FormatLocalDate(d))

	// Early morning in a far-west zone: UTC conversion would say May 3.
	west := time.FixedZone("NUT", -11*3600)
	d = time.Date(2025, 5, 2, 23, 30, 0, 0, west)
	assert.Equal(t, "2025-05-02", FormatLocalDate(d))
}

func TestFormatDisplayDateDayFirst(t *testing.T) {
	d := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/05/2025", FormatDisplayDate(d))
}
