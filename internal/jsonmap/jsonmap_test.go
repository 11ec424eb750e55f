package jsonmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueNilMap(t *testing.T) {
	var m Map
	v, err := m.Value()
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), v)
}

func TestValueScanRoundtrip(t *testing.T) {
	m := Map{"u1": "🔥", "u2": "👍"}
	v, err := m.Value()
	require.NoError(t, err)

	var got Map
	require.NoError(t, got.Scan(v))
	require.Equal(t, m, got)
}

func TestScanString(t *testing.T) {
	var m Map
	require.NoError(t, m.Scan(`{"a":"b"}`))
	require.Equal(t, Map{"a": "b"}, m)
}

func TestScanNil(t *testing.T) {
	var m Map
	require.NoError(t, m.Scan(nil))
	require.NotNil(t, m)
	require.Empty(t, m)
}

func TestScanUnsupportedType(t *testing.T) {
	var m Map
	require.Error(t, m.Scan(42))
}
