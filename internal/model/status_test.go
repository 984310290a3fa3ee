package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusInfo(t *testing.T) {
	cases := []struct {
		in     Status
		next   Status
		action string
	}{
		{StatusActive, StatusCompleted, "mark complete"},
		{StatusCompleted, StatusArchived, "archive"},
		{StatusArchived, StatusActive, "restore to active"},
	}
	for _, tc := range cases {
		t.Run(string(tc.in), func(t *testing.T) {
			info := NextStatusInfo(tc.in)
			assert.Equal(t, tc.next, info.Next)
			assert.Equal(t, tc.action, info.ActionLabel)
		})
	}
}

func TestNextStatusInfo_CycleCloses(t *testing.T) {
	for _, start := range Statuses {
		s := start
		for i := 0; i < 3; i++ {
			s = NextStatusInfo(s).Next
		}
		assert.Equal(t, start, s)
	}
}

func TestNextStatusInfo_UnknownFallsBackToActive(t *testing.T) {
	for _, s := range []Status{"", "deleted", "ACTIVE"} {
		assert.Equal(t, NextStatusInfo(StatusActive), NextStatusInfo(s), "status %q", s)
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("  Completed ")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, s)

	_, err = ParseStatus("done")
	require.Error(t, err)
}
