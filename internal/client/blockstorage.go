package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// BlockStorageClient implements nocoah.BlockStorageClient.
type BlockStorageClient struct {
	httpClient *nchttp.Client
	tenantID   string
}

// NewBlockStorageClient creates a new block storage client.
func NewBlockStorageClient(httpClient *nchttp.Client, tenantID string) *BlockStorageClient {
	return &BlockStorageClient{
		httpClient: httpClient,
		tenantID:   tenantID,
	}
}

// ListVolumes implements nocoah.BlockStorageClient.ListVolumes.
func (c *BlockStorageClient) ListVolumes(ctx context.Context) ([]nocoah.Volume, error) {
	path := fmt.Sprintf("/%s/volumes/detail", c.tenantID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing volumes: %w", err)
	}

	var envelope struct {
		Volumes []nocoah.Volume `json:"volumes"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing volumes list: %w", err)
	}

	return envelope.Volumes, nil
}

// GetVolume implements nocoah.BlockStorageClient.GetVolume.
func (c *BlockStorageClient) GetVolume(ctx context.Context, volumeID string) (*nocoah.Volume, error) {
	if volumeID == "" {
		return nil, nocoah.ErrIDRequired
	}

	path := fmt.Sprintf("/%s/volumes/%s", c.tenantID, volumeID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting volume: %w", err)
	}

	var envelope struct {
		Volume nocoah.Volume `json:"volume"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing volume: %w", err)
	}

	return &envelope.Volume, nil
}

// CreateVolume implements nocoah.BlockStorageClient.CreateVolume.
func (c *BlockStorageClient) CreateVolume(ctx context.Context, req *nocoah.VolumeCreateRequest) (*nocoah.Volume, error) {
	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	if req.Name == "" {
		return nil, nocoah.ErrNameRequired
	}

	path := fmt.Sprintf("/%s/volumes", c.tenantID)
	body := map[string]interface{}{"volume": req}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating volume: %w", err)
	}

	var envelope struct {
		Volume nocoah.Volume `json:"volume"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing volume response: %w", err)
	}

	return &envelope.Volume, nil
}

// DeleteVolume implements nocoah.BlockStorageClient.DeleteVolume.
func (c *BlockStorageClient) DeleteVolume(ctx context.Context, volumeID string) error {
	if volumeID == "" {
		return nocoah.ErrIDRequired
	}

	path := fmt.Sprintf("/%s/volumes/%s", c.tenantID, volumeID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting volume: %w", err)
	}

	return nil
}
