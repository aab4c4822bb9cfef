package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// ComputeClient implements nocoah.ComputeClient.
type ComputeClient struct {
	httpClient *nchttp.Client
	tenantID   string
}

// NewComputeClient creates a new compute client.
func NewComputeClient(httpClient *nchttp.Client, tenantID string) *ComputeClient {
	return &ComputeClient{
		httpClient: httpClient,
		tenantID:   tenantID,
	}
}

// ListServers implements nocoah.ComputeClient.ListServers.
func (c *ComputeClient) ListServers(ctx context.Context) ([]nocoah.Server, error) {
	path := fmt.Sprintf("/%s/servers/detail", c.tenantID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing servers: %w", err)
	}

	var envelope struct {
		Servers []nocoah.Server `json:"servers"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing servers list: %w", err)
	}

	return envelope.Servers, nil
}

// GetServer implements nocoah.ComputeClient.GetServer.
func (c *ComputeClient) GetServer(ctx context.Context, serverID string) (*nocoah.Server, error) {
	if serverID == "" {
		return nil, nocoah.ErrIDRequired
	}

	path := fmt.Sprintf("/%s/servers/%s", c.tenantID, serverID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting server: %w", err)
	}

	var envelope struct {
		Server nocoah.Server `json:"server"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing server: %w", err)
	}

	return &envelope.Server, nil
}

// CreateServer implements nocoah.ComputeClient.CreateServer.
func (c *ComputeClient) CreateServer(ctx context.Context, req *nocoah.ServerCreateRequest) (*nocoah.Server, error) {
	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	path := fmt.Sprintf("/%s/servers", c.tenantID)
	body := map[string]interface{}{"server": req}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	var envelope struct {
		Server nocoah.Server `json:"server"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing server response: %w", err)
	}

	return &envelope.Server, nil
}

// DeleteServer implements nocoah.ComputeClient.DeleteServer.
func (c *ComputeClient) DeleteServer(ctx context.Context, serverID string) error {
	if serverID == "" {
		return nocoah.ErrIDRequired
	}

	path := fmt.Sprintf("/%s/servers/%s", c.tenantID, serverID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting server: %w", err)
	}

	return nil
}

// StartServer implements nocoah.ComputeClient.StartServer.
func (c *ComputeClient) StartServer(ctx context.Context, serverID string) error {
	return c.serverAction(ctx, serverID, "os-start")
}

// StopServer implements nocoah.ComputeClient.StopServer.
func (c *ComputeClient) StopServer(ctx context.Context, serverID string) error {
	return c.serverAction(ctx, serverID, "os-stop")
}

// RebootServer implements nocoah.ComputeClient.RebootServer.
func (c *ComputeClient) RebootServer(ctx context.Context, serverID string) error {
	if serverID == "" {
		return nocoah.ErrIDRequired
	}

	path := fmt.Sprintf("/%s/servers/%s/action", c.tenantID, serverID)
	body := map[string]interface{}{"reboot": map[string]string{"type": "SOFT"}}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("rebooting server: %w", err)
	}

	return nil
}

func (c *ComputeClient) serverAction(ctx context.Context, serverID, action string) error {
	if serverID == "" {
		return nocoah.ErrIDRequired
	}

	path := fmt.Sprintf("/%s/servers/%s/action", c.tenantID, serverID)
	body := map[string]interface{}{action: nil}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("server action %s: %w", action, err)
	}

	return nil
}
