package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("jane@example.com"))
	require.True(t, IsValidEmail("jane.doe+tag@sub.example.co"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("   "))
	require.False(t, IsValidEmail("no-at-sign"))
	require.False(t, IsValidEmail("jane@nodot"))
}

func TestIsValidObjectID(t *testing.T) {
	require.True(t, IsValidObjectID("507f1f77bcf86cd799439011"))
	require.False(t, IsValidObjectID("507f1f77bcf86cd79943901"))
	require.False(t, IsValidObjectID("zzzf1f77bcf86cd799439011"))
	require.False(t, IsValidObjectID(""))
}

func TestIsValidDateTime(t *testing.T) {
	require.True(t, IsValidDateTime("2024-06-01T10:00:00Z"))
	require.True(t, IsValidDateTime("2024-06-01T10:00:00.000Z"))
	require.False(t, IsValidDateTime("2024-06-01"))
	require.False(t, IsValidDateTime("junk"))
}
