package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	type zone struct {
		ID     string `json:"id"`
		Offset int    `json:"offset"`
	}

	t.Run("strings are stored raw", func(t *testing.T) {
		payload, err := encode("Europe/Berlin")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", string(payload))

		var got string
		require.NoError(t, decode(payload, &got))
		assert.Equal(t, "Europe/Berlin", got)
	})

	t.Run("structs go through json", func(t *testing.T) {
		payload, err := encode(zone{ID: "Asia/Kolkata", Offset: 330})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"Asia/Kolkata","offset":330}`, string(payload))

		var got zone
		require.NoError(t, decode(payload, &got))
		assert.Equal(t, zone{ID: "Asia/Kolkata", Offset: 330}, got)
	})

	t.Run("unmarshalable values fail", func(t *testing.T) {
		_, err := encode(make(chan int))
		assert.ErrorContains(t, err, "failed to marshal cache value")
	})

	t.Run("corrupt payload fails", func(t *testing.T) {
		var got zone
		assert.ErrorContains(t, decode([]byte("{"), &got), "failed to unmarshal cache value")
	})
}
