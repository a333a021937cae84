package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-api/internal/auth"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func TestConfigurationKeyAuth(t *testing.T) {
	t.Parallel()
	t.Run("sets team header", func(t *testing.T) {
		t.Parallel()

		strategy, err := auth.NewConfigurationKeyAuth("my-key")
		require.NoError(t, err)

		header := http.Header{}
		strategy.Apply(header)

		assert.Equal(t, "my-key", header.Get("X-Honeycomb-Team"))
		assert.Empty(t, header.Get("Authorization"))
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := auth.NewConfigurationKeyAuth("")
		require.ErrorIs(t, err, auth.ErrEmptyAPIKey)
	})
}

func TestManagementKeyAuth(t *testing.T) {
	t.Parallel()
	t.Run("sets bearer pair", func(t *testing.T) {
		t.Parallel()

		strategy, err := auth.NewManagementKeyAuth("key-id", "key-secret")
		require.NoError(t, err)

		header := http.Header{}
		strategy.Apply(header)

		assert.Equal(t, "Bearer key-id:key-secret", header.Get("Authorization"))
		assert.Empty(t, header.Get("X-Honeycomb-Team"))
	})

	t.Run("rejects incomplete pair", func(t *testing.T) {
		t.Parallel()

		_, err := auth.NewManagementKeyAuth("key-id", "")
		require.ErrorIs(t, err, auth.ErrEmptyManagementKey)

		_, err = auth.NewManagementKeyAuth("", "key-secret")
		require.ErrorIs(t, err, auth.ErrEmptyManagementKey)
	})
}

func TestFromConfig(t *testing.T) {
	t.Parallel()
	t.Run("configuration key", func(t *testing.T) {
		t.Parallel()

		strategy, err := auth.FromConfig(&honeycomb.Config{APIKey: "abc"})
		require.NoError(t, err)

		header := http.Header{}
		strategy.Apply(header)
		assert.Equal(t, "abc", header.Get("X-Honeycomb-Team"))
	})

	t.Run("management pair", func(t *testing.T) {
		t.Parallel()

		strategy, err := auth.FromConfig(&honeycomb.Config{
			ManagementKey:    "id",
			ManagementSecret: "secret",
		})
		require.NoError(t, err)

		header := http.Header{}
		strategy.Apply(header)
		assert.Equal(t, "Bearer id:secret", header.Get("Authorization"))
	})
}
