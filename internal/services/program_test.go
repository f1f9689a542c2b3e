package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multaqa/internal/domain"
)

func TestGroupSessions(t *testing.T) {
	sessions := []*domain.SessionItem{
		{ID: "1", Date: "2026-03-02", StartTime: "10:00", TitleEn: "Keynote"},
		{ID: "2", Date: "2026-03-01", StartTime: "14:00", TitleEn: "Panel"},
		{ID: "3", Date: "2026-03-01", StartTime: "09:00", TitleEn: "Opening"},
		{ID: "4", Date: "", StartTime: "11:00", TitleEn: "Floating workshop"},
		{ID: "5", Date: "2026-03-02", StartTime: "10:00", TitleEn: "Parallel talk"},
	}

	days := GroupSessions(sessions)
	require.Len(t, days, 3)

	// Day keys ascend; the dateless bucket sorts after YYYY-MM-DD keys.
	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Equal(t, "2026-03-02", days[1].Date)
	assert.Equal(t, domain.NoDateKey, days[2].Date)

	// Within a day, sessions order by start time.
	require.Len(t, days[0].Sessions, 2)
	assert.Equal(t, "3", days[0].Sessions[0].ID)
	assert.Equal(t, "2", days[0].Sessions[1].ID)

	// Equal start times keep input order.
	require.Len(t, days[1].Sessions, 2)
	assert.Equal(t, "1", days[1].Sessions[0].ID)
	assert.Equal(t, "5", days[1].Sessions[1].ID)

	require.Len(t, days[2].Sessions, 1)
	assert.Equal(t, "4", days[2].Sessions[0].ID)
}

func TestGroupSessionsEmpty(t *testing.T) {
	assert.Empty(t, GroupSessions(nil))
}

func TestGroupSessionsIdempotent(t *testing.T) {
	sessions := []*domain.SessionItem{
		{ID: "1", Date: "2026-03-01", StartTime: "10:00"},
		{ID: "2", Date: "2026-03-01", StartTime: "09:00"},
	}
	first := GroupSessions(sessions)
	second := GroupSessions(sessions)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Sessions[0].ID, second[0].Sessions[0].ID)
	assert.Equal(t, "2", second[0].Sessions[0].ID)
}
