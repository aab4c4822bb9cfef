package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// NetworkClient implements nocoah.NetworkClient.
type NetworkClient struct {
	httpClient *nchttp.Client
}

// NewNetworkClient creates a new network client.
func NewNetworkClient(httpClient *nchttp.Client) *NetworkClient {
	return &NetworkClient{httpClient: httpClient}
}

// ListNetworks implements nocoah.NetworkClient.ListNetworks.
func (c *NetworkClient) ListNetworks(ctx context.Context) ([]nocoah.Network, error) {
	resp, err := c.httpClient.Get(ctx, "/networks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing networks: %w", err)
	}

	var envelope struct {
		Networks []nocoah.Network `json:"networks"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing networks list: %w", err)
	}

	return envelope.Networks, nil
}

// ListSecurityGroups implements nocoah.NetworkClient.ListSecurityGroups.
func (c *NetworkClient) ListSecurityGroups(ctx context.Context) ([]nocoah.SecurityGroup, error) {
	resp, err := c.httpClient.Get(ctx, "/security-groups", nil)
	if err != nil {
		return nil, fmt.Errorf("listing security groups: %w", err)
	}

	var envelope struct {
		SecurityGroups []nocoah.SecurityGroup `json:"security_groups"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing security groups list: %w", err)
	}

	return envelope.SecurityGroups, nil
}

// GetSecurityGroup implements nocoah.NetworkClient.GetSecurityGroup.
func (c *NetworkClient) GetSecurityGroup(ctx context.Context, groupID string) (*nocoah.SecurityGroup, error) {
	if groupID == "" {
		return nil, nocoah.ErrIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/security-groups/"+groupID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting security group: %w", err)
	}

	var envelope struct {
		SecurityGroup nocoah.SecurityGroup `json:"security_group"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing security group: %w", err)
	}

	return &envelope.SecurityGroup, nil
}
