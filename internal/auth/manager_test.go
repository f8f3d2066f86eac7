package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kwpaschal/ucmdb-rest/internal/auth"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPasswordTokenManager(t *testing.T) {
	t.Parallel()
	t.Run("acquires token on first use", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/authenticate", request.URL.Path)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "admin", body["username"])
			assert.Equal(t, "secret", body["password"])
			assert.InDelta(t, 1, body["clientContext"], 0)

			_ = json.NewEncoder(writer).Encode(map[string]string{"token": "issued-token"})
		}))
		defer server.Close()

		manager := auth.NewPasswordTokenManager(server.URL, "admin", "secret", 1)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("reuses cached token", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			_ = json.NewEncoder(writer).Encode(map[string]string{"token": "issued-token"})
		}))
		defer server.Close()

		manager := auth.NewPasswordTokenManager(server.URL, "admin", "secret", 1)

		_, err := manager.GetToken(context.Background())
		require.NoError(t, err)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("refresh forces reauthentication", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			n := calls.Add(1)
			_ = json.NewEncoder(writer).Encode(map[string]string{"token": "token-" + string(rune('0'+n))})
		}))
		defer server.Close()

		manager := auth.NewPasswordTokenManager(server.URL, "admin", "secret", 1)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-1", token)

		err = manager.RefreshToken(context.Background())
		require.NoError(t, err)

		token, err = manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-2", token)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		manager := auth.NewPasswordTokenManager(server.URL, "admin", "wrong", 1)

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ucmdb.ErrAuthenticationFailed)
	})

	t.Run("empty token in response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{})
		}))
		defer server.Close()

		manager := auth.NewPasswordTokenManager(server.URL, "admin", "secret", 1)

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, ucmdb.ErrAuthenticationFailed)
	})

	t.Run("manually set token skips authentication", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewPasswordTokenManager("http://unreachable.invalid", "admin", "secret", 1)
		manager.SetToken("preset-token", time.Now().Add(time.Hour))

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "preset-token", token)
	})
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()
	t.Run("returns the fixed token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("refresh is unsupported", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")
		err := manager.RefreshToken(context.Background())
		require.ErrorIs(t, err, ucmdb.ErrStaticTokenNoRefresh)
	})

	t.Run("set replaces the token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")
		manager.SetToken("replacement", time.Time{})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "replacement", token)
	})
}
