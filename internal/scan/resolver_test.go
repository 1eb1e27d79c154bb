package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEquipmentIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://gearguard.example.com/scan/eq-42":     "eq-42",
		"https://gearguard.example.com/equipment/eq-7": "eq-7",
		"http://host/app/scan/abc-123":                 "abc-123",
		"https://host/equipment/eq-9?utm_source=qr":    "eq-9",
		"  https://gearguard.example.com/scan/eq-42\n": "eq-42",
		"https://host/a/b/equipment/55f2c9d0/extra":    "55f2c9d0",
	}
	for input, want := range cases {
		got, err := ResolveEquipmentID(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	// When both segments appear, "scan" wins wherever it sits in the path.
	got, err := ResolveEquipmentID("https://host/equipment/old-1/scan/new-2")
	require.NoError(t, err)
	assert.Equal(t, "new-2", got)
}

func TestResolveEquipmentIDFromJSON(t *testing.T) {
	got, err := ResolveEquipmentID(`{"equipmentId": "eq-7"}`)
	require.NoError(t, err)
	assert.Equal(t, "eq-7", got)

	got, err = ResolveEquipmentID(`{"id": "eq-15", "name": "Press"}`)
	require.NoError(t, err)
	assert.Equal(t, "eq-15", got)

	// equipmentId wins over id when both are present.
	got, err = ResolveEquipmentID(`{"id": "other", "equipmentId": "eq-1"}`)
	require.NoError(t, err)
	assert.Equal(t, "eq-1", got)
}

func TestResolveEquipmentIDRawToken(t *testing.T) {
	got, err := ResolveEquipmentID("abcdef9876")
	require.NoError(t, err)
	assert.Equal(t, "abcdef9876", got)

	// A URL without a recognizable segment falls through to the raw rule.
	got, err = ResolveEquipmentID("https://host/about")
	require.NoError(t, err)
	assert.Equal(t, "https://host/about", got)

	// JSON without an id field is still a long-enough raw token.
	got, err = ResolveEquipmentID(`{"name":"no id here"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"no id here"}`, got)
}

func TestResolveEquipmentIDFailures(t *testing.T) {
	for _, input := range []string{"", "   ", "ab1", "x1"} {
		_, err := ResolveEquipmentID(input)
		assert.ErrorIs(t, err, ErrUnresolved, "input %q", input)
	}
}
