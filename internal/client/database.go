package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// DatabaseClient implements nocoah.DatabaseClient.
type DatabaseClient struct {
	httpClient *nchttp.Client
}

// NewDatabaseClient creates a new database hosting client.
func NewDatabaseClient(httpClient *nchttp.Client) *DatabaseClient {
	return &DatabaseClient{httpClient: httpClient}
}

// ListDatabases implements nocoah.DatabaseClient.ListDatabases.
func (c *DatabaseClient) ListDatabases(ctx context.Context) ([]nocoah.Database, error) {
	resp, err := c.httpClient.Get(ctx, "/databases", nil)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	var envelope struct {
		Databases []nocoah.Database `json:"databases"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing databases list: %w", err)
	}

	return envelope.Databases, nil
}

// GetDatabase implements nocoah.DatabaseClient.GetDatabase.
func (c *DatabaseClient) GetDatabase(ctx context.Context, databaseID string) (*nocoah.Database, error) {
	if databaseID == "" {
		return nil, nocoah.ErrIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/databases/"+databaseID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database: %w", err)
	}

	var envelope struct {
		Database nocoah.Database `json:"database"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing database: %w", err)
	}

	return &envelope.Database, nil
}

// CreateDatabase implements nocoah.DatabaseClient.CreateDatabase.
func (c *DatabaseClient) CreateDatabase(ctx context.Context, req *nocoah.DatabaseCreateRequest) (*nocoah.Database, error) {
	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	if req.Name == "" {
		return nil, nocoah.ErrNameRequired
	}

	body := map[string]interface{}{"database": req}

	resp, err := c.httpClient.Post(ctx, "/databases", body)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	var envelope struct {
		Database nocoah.Database `json:"database"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &envelope.Database, nil
}

// DeleteDatabase implements nocoah.DatabaseClient.DeleteDatabase.
func (c *DatabaseClient) DeleteDatabase(ctx context.Context, databaseID string) error {
	if databaseID == "" {
		return nocoah.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, "/databases/"+databaseID)
	if err != nil {
		return fmt.Errorf("deleting database: %w", err)
	}

	return nil
}

// ListDatabaseUsers implements nocoah.DatabaseClient.ListDatabaseUsers.
func (c *DatabaseClient) ListDatabaseUsers(ctx context.Context) ([]nocoah.DatabaseUser, error) {
	resp, err := c.httpClient.Get(ctx, "/users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing database users: %w", err)
	}

	var envelope struct {
		Users []nocoah.DatabaseUser `json:"users"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing database users list: %w", err)
	}

	return envelope.Users, nil
}

// CreateDatabaseUser implements nocoah.DatabaseClient.CreateDatabaseUser.
func (c *DatabaseClient) CreateDatabaseUser(ctx context.Context, req *nocoah.DatabaseUserCreateRequest) (*nocoah.DatabaseUser, error) {
	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	if req.Name == "" {
		return nil, nocoah.ErrNameRequired
	}

	body := map[string]interface{}{"user": req}

	resp, err := c.httpClient.Post(ctx, "/users", body)
	if err != nil {
		return nil, fmt.Errorf("creating database user: %w", err)
	}

	var envelope struct {
		User nocoah.DatabaseUser `json:"user"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing database user response: %w", err)
	}

	return &envelope.User, nil
}

// DeleteDatabaseUser implements nocoah.DatabaseClient.DeleteDatabaseUser.
func (c *DatabaseClient) DeleteDatabaseUser(ctx context.Context, userID string) error {
	if userID == "" {
		return nocoah.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, "/users/"+userID)
	if err != nil {
		return fmt.Errorf("deleting database user: %w", err)
	}

	return nil
}
