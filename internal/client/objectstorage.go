package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// accountHeaderPrefix marks the account metadata headers the service
// returns on a HEAD of the account path.
const accountHeaderPrefix = "X-Account-"

// ObjectStorageClient implements nocoah.ObjectStorageClient.
type ObjectStorageClient struct {
	httpClient  *nchttp.Client
	accountPath string
}

// NewObjectStorageClient creates a new object storage client. The
// account path prefixes every container and object path.
func NewObjectStorageClient(httpClient *nchttp.Client, tenantID string) *ObjectStorageClient {
	return &ObjectStorageClient{
		httpClient:  httpClient,
		accountPath: "/nc_" + tenantID,
	}
}

// GetAccountMetadata implements nocoah.ObjectStorageClient.GetAccountMetadata.
// The result is derived from response headers, not a JSON body.
func (c *ObjectStorageClient) GetAccountMetadata(ctx context.Context) (map[string]string, error) {
	resp, err := c.httpClient.Do(ctx, &nchttp.Request{
		Method: http.MethodHead,
		Path:   c.accountPath,
	})
	if err != nil {
		return nil, fmt.Errorf("getting account metadata: %w", err)
	}

	metadata := map[string]string{}

	for key, values := range resp.Headers {
		if strings.HasPrefix(key, accountHeaderPrefix) && len(values) > 0 {
			metadata[key] = values[0]
		}
	}

	return metadata, nil
}

// ListContainers implements nocoah.ObjectStorageClient.ListContainers.
func (c *ObjectStorageClient) ListContainers(ctx context.Context) ([]nocoah.Container, error) {
	resp, err := c.httpClient.Get(ctx, c.accountPath, url.Values{"format": []string{"json"}})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	var containers []nocoah.Container

	err = json.Unmarshal(resp.Body, &containers)
	if err != nil {
		return nil, fmt.Errorf("parsing containers list: %w", err)
	}

	return containers, nil
}

// ListObjects implements nocoah.ObjectStorageClient.ListObjects.
func (c *ObjectStorageClient) ListObjects(ctx context.Context, container string) ([]nocoah.Object, error) {
	if container == "" {
		return nil, nocoah.ErrNameRequired
	}

	path := c.accountPath + "/" + container

	resp, err := c.httpClient.Get(ctx, path, url.Values{"format": []string{"json"}})
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}

	var objects []nocoah.Object

	err = json.Unmarshal(resp.Body, &objects)
	if err != nil {
		return nil, fmt.Errorf("parsing objects list: %w", err)
	}

	return objects, nil
}

// UploadObject implements nocoah.ObjectStorageClient.UploadObject. The
// body is sent as-is; it is never JSON-encoded.
func (c *ObjectStorageClient) UploadObject(ctx context.Context, container, object, contentType string, body io.Reader) error {
	if container == "" || object == "" {
		return nocoah.ErrNameRequired
	}

	if body == nil {
		return nocoah.ErrBodyRequired
	}

	_, err := c.httpClient.Do(ctx, &nchttp.Request{
		Method:      http.MethodPut,
		Path:        c.accountPath + "/" + container + "/" + object,
		RawBody:     body,
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading object: %w", err)
	}

	return nil
}

// DownloadObject implements nocoah.ObjectStorageClient.DownloadObject,
// feeding the object's bytes to the handler chunk by chunk.
func (c *ObjectStorageClient) DownloadObject(ctx context.Context, container, object string, handler func(chunk []byte) error) error {
	if container == "" || object == "" {
		return nocoah.ErrNameRequired
	}

	err := c.httpClient.GetStream(ctx, c.accountPath+"/"+container+"/"+object, handler)
	if err != nil {
		return fmt.Errorf("downloading object: %w", err)
	}

	return nil
}

// DeleteObject implements nocoah.ObjectStorageClient.DeleteObject.
func (c *ObjectStorageClient) DeleteObject(ctx context.Context, container, object string) error {
	if container == "" || object == "" {
		return nocoah.ErrNameRequired
	}

	_, err := c.httpClient.Delete(ctx, c.accountPath+"/"+container+"/"+object)
	if err != nil {
		return fmt.Errorf("deleting object: %w", err)
	}

	return nil
}
