package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCompleted(t *testing.T) {
	// Legacy records predate the completion flag and count as completed.
	legacy := ActivityRecord{}
	legacy.ResolveCompleted()
	require.True(t, legacy.Completed)

	yes := true
	done := ActivityRecord{IsCompleted: &yes}
	done.ResolveCompleted()
	require.True(t, done.Completed)

	no := false
	open := ActivityRecord{IsCompleted: &no}
	open.ResolveCompleted()
	require.False(t, open.Completed)
}
