package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestStatus(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		events   []ApplicationStatus
		expected Status
	}{
		{
			name: "SingleEvent",
			events: []ApplicationStatus{
				{ID: 1, StatusType: StatusApplied, CreatedAt: base},
			},
			expected: StatusApplied,
		},
		{
			name: "LatestTimestampWins",
			events: []ApplicationStatus{
				{ID: 1, StatusType: StatusApplied, CreatedAt: base},
				{ID: 2, StatusType: StatusTest, CreatedAt: base.Add(24 * time.Hour)},
				{ID: 3, StatusType: StatusInterview, CreatedAt: base.Add(48 * time.Hour)},
			},
			expected: StatusInterview,
		},
		{
			name: "OrderOfSliceIrrelevant",
			events: []ApplicationStatus{
				{ID: 3, StatusType: StatusRejected, CreatedAt: base.Add(48 * time.Hour)},
				{ID: 1, StatusType: StatusApplied, CreatedAt: base},
				{ID: 2, StatusType: StatusTest, CreatedAt: base.Add(24 * time.Hour)},
			},
			expected: StatusRejected,
		},
		{
			name: "EqualTimestampsHigherIDWins",
			events: []ApplicationStatus{
				{ID: 1, StatusType: StatusApplied, CreatedAt: base},
				{ID: 2, StatusType: StatusTest, CreatedAt: base},
				{ID: 3, StatusType: StatusWithdrawn, CreatedAt: base},
			},
			expected: StatusWithdrawn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LatestStatus(tt.events)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLatestStatus_EmptyLog(t *testing.T) {
	_, err := LatestStatus(nil)
	assert.ErrorIs(t, err, ErrNoStatusEvents)
}

func TestStatusScan(t *testing.T) {
	var s Status
	require.NoError(t, s.Scan("OfferAwarded"))
	assert.Equal(t, StatusOfferAwarded, s)

	require.NoError(t, s.Scan([]byte("Rejected")))
	assert.Equal(t, StatusRejected, s)

	assert.Error(t, s.Scan("Ghosted"))
	assert.Error(t, s.Scan(42))
}

func TestStatusValue(t *testing.T) {
	v, err := StatusInterview.Value()
	require.NoError(t, err)
	assert.Equal(t, "Interview", v)
}

func TestTestTypeScan(t *testing.T) {
	var tt TestType
	require.NoError(t, tt.Scan("Aptitude"))
	assert.Equal(t, TestTypeAptitude, tt)
	assert.Error(t, tt.Scan("Karaoke"))
}

func TestInterviewTypeScan(t *testing.T) {
	var it InterviewType
	require.NoError(t, it.Scan("Behavioural"))
	assert.Equal(t, InterviewTypeBehavioural, it)
	assert.Error(t, it.Scan("Trial"))
}

func TestChannelScan(t *testing.T) {
	var ch Channel
	require.NoError(t, ch.Scan("Email"))
	assert.Equal(t, ChannelEmail, ch)
	assert.Error(t, ch.Scan("CarrierPigeon"))
}
