package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresValue(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		v, err := Genres(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("order is preserved", func(t *testing.T) {
		v, err := Genres{"Jazz", "Blues", "Folk"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `["Jazz","Blues","Folk"]`, v)
	})
}

func TestGenresScan(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  Genres
	}{
		{"bytes", []byte(`["Rock n Roll","Soul"]`), Genres{"Rock n Roll", "Soul"}},
		{"string", `["Pop"]`, Genres{"Pop"}},
		{"nil", nil, Genres{}},
		{"json null", []byte(`null`), Genres{}},
		{"empty", []byte{}, Genres{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g Genres
			require.NoError(t, g.Scan(tc.input))
			assert.Equal(t, tc.want, g)
		})
	}

	t.Run("rejects unsupported type", func(t *testing.T) {
		var g Genres
		assert.Error(t, g.Scan(42))
	})
}

func TestShowIsUpcoming(t *testing.T) {
	now := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	assert.True(t, Show{StartTime: now.Add(time.Second)}.IsUpcoming(now))
	assert.False(t, Show{StartTime: now}.IsUpcoming(now), "a show starting exactly now is past")
	assert.False(t, Show{StartTime: now.Add(-time.Hour)}.IsUpcoming(now))
}
