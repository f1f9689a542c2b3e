package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmissionStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		got, err := ParseSubmissionStatus(s)
		require.NoError(t, err)
		assert.Equal(t, SubmissionStatus(s), got)
	}
	for _, s := range []string{"", "Pending", "archived", "approved "} {
		_, err := ParseSubmissionStatus(s)
		assert.ErrorIs(t, err, ErrInvalidInput, "status %q", s)
	}
}

func TestCanTransition(t *testing.T) {
	statuses := []SubmissionStatus{StatusPending, StatusApproved, StatusRejected}
	for _, from := range statuses {
		for _, to := range statuses {
			want := from != to
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransition(StatusPending, "archived"))
	assert.False(t, CanTransition(StatusApproved, ""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "قيد المراجعة", StatusPending.Label(LangArabic))
	assert.Equal(t, "Pending", StatusPending.Label(LangEnglish))
	assert.Equal(t, "Approved", StatusApproved.Label(LangEnglish))
	assert.Equal(t, "مرفوض", StatusRejected.Label(LangArabic))
}

func TestStatusPriority(t *testing.T) {
	assert.Less(t, StatusPending.Priority(), StatusApproved.Priority())
	assert.Less(t, StatusApproved.Priority(), StatusRejected.Priority())
}

func TestNewSubmission(t *testing.T) {
	owner := OwnerRef{Kind: OwnerSector, OwnerID: "sec-1"}
	data := map[string]FieldValue{"name": StringValue("Omar")}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSubmission(owner, data, now)
	assert.Equal(t, StatusPending, s.Status)
	assert.Equal(t, owner, s.Owner)
	assert.Empty(t, s.ID)
}

func TestMissingFieldsError(t *testing.T) {
	err := &MissingFieldsError{FieldIDs: []string{"name", "phone"}}
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "phone")
}
