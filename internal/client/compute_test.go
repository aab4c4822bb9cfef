package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

func TestComputeClient_ListServers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tenant-1/servers/detail", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "test-token", request.Header.Get("X-Auth-Token"))

		response := map[string]interface{}{
			"servers": []map[string]string{
				{"id": "srv-1", "name": "web", "status": "ACTIVE"},
				{"id": "srv-2", "name": "db", "status": "SHUTOFF"},
			},
		}
		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	compute := NewComputeClient(newTestDispatcher(server), "tenant-1")

	servers, err := compute.ListServers(context.Background())
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "srv-1", servers[0].ID)
	assert.Equal(t, "SHUTOFF", servers[1].Status)
}

func TestComputeClient_GetServer(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tenant-1/servers/srv-1", request.URL.Path)

			response := map[string]interface{}{
				"server": map[string]string{"id": "srv-1", "name": "web", "status": "ACTIVE"},
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		compute := NewComputeClient(newTestDispatcher(server), "tenant-1")

		got, err := compute.GetServer(context.Background(), "srv-1")
		require.NoError(t, err)
		assert.Equal(t, "web", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"itemNotFound": map[string]interface{}{"message": "Instance could not be found", "code": 404},
			})
		}))
		defer server.Close()

		compute := NewComputeClient(newTestDispatcher(server), "tenant-1")

		got, err := compute.GetServer(context.Background(), "missing")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, nocoah.IsNotFound(err))
		assert.Contains(t, err.Error(), "Instance could not be found")
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		compute := NewComputeClient(nil, "tenant-1")

		_, err := compute.GetServer(context.Background(), "")
		require.ErrorIs(t, err, nocoah.ErrIDRequired)
	})
}

func TestComputeClient_CreateServer(t *testing.T) {
	t.Parallel()
	t.Run("successful create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tenant-1/servers", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]nocoah.ServerCreateRequest
			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "image-1", body["server"].ImageRef)

			writer.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"server": map[string]string{"id": "srv-new", "status": "BUILD"},
			})
		}))
		defer server.Close()

		compute := NewComputeClient(newTestDispatcher(server), "tenant-1")

		created, err := compute.CreateServer(context.Background(), &nocoah.ServerCreateRequest{
			ImageRef:  "image-1",
			FlavorRef: "flavor-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "srv-new", created.ID)
		assert.Equal(t, "BUILD", created.Status)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		compute := NewComputeClient(nil, "tenant-1")

		_, err := compute.CreateServer(context.Background(), nil)
		require.ErrorIs(t, err, nocoah.ErrBodyRequired)
	})
}

func TestComputeClient_ServerActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(nocoah.ComputeClient, context.Context) error
		wantAction string
	}{
		{
			name:       "start",
			call:       func(c nocoah.ComputeClient, ctx context.Context) error { return c.StartServer(ctx, "srv-1") },
			wantAction: "os-start",
		},
		{
			name:       "stop",
			call:       func(c nocoah.ComputeClient, ctx context.Context) error { return c.StopServer(ctx, "srv-1") },
			wantAction: "os-stop",
		},
		{
			name:       "reboot",
			call:       func(c nocoah.ComputeClient, ctx context.Context) error { return c.RebootServer(ctx, "srv-1") },
			wantAction: "reboot",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, "/tenant-1/servers/srv-1/action", request.URL.Path)
				assert.Equal(t, "POST", request.Method)

				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
				assert.Contains(t, body, testCase.wantAction)

				writer.WriteHeader(http.StatusAccepted)
			}))
			defer server.Close()

			compute := NewComputeClient(newTestDispatcher(server), "tenant-1")

			require.NoError(t, testCase.call(compute, context.Background()))
		})
	}
}

func TestComputeClient_DeleteServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tenant-1/servers/srv-1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	compute := NewComputeClient(newTestDispatcher(server), "tenant-1")

	require.NoError(t, compute.DeleteServer(context.Background(), "srv-1"))
}
