package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// ImageClient implements nocoah.ImageClient.
type ImageClient struct {
	httpClient *nchttp.Client
}

// NewImageClient creates a new image client.
func NewImageClient(httpClient *nchttp.Client) *ImageClient {
	return &ImageClient{httpClient: httpClient}
}

// ListImages implements nocoah.ImageClient.ListImages.
func (c *ImageClient) ListImages(ctx context.Context) ([]nocoah.Image, error) {
	resp, err := c.httpClient.Get(ctx, "/images", nil)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	var envelope struct {
		Images []nocoah.Image `json:"images"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing images list: %w", err)
	}

	return envelope.Images, nil
}

// GetImage implements nocoah.ImageClient.GetImage.
func (c *ImageClient) GetImage(ctx context.Context, imageID string) (*nocoah.Image, error) {
	if imageID == "" {
		return nil, nocoah.ErrIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/images/"+imageID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting image: %w", err)
	}

	var image nocoah.Image

	err = json.Unmarshal(resp.Body, &image)
	if err != nil {
		return nil, fmt.Errorf("parsing image: %w", err)
	}

	return &image, nil
}
