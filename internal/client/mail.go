package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// MailClient implements nocoah.MailClient.
type MailClient struct {
	httpClient *nchttp.Client
}

// NewMailClient creates a new mail hosting client.
func NewMailClient(httpClient *nchttp.Client) *MailClient {
	return &MailClient{httpClient: httpClient}
}

// ListMailDomains implements nocoah.MailClient.ListMailDomains.
func (c *MailClient) ListMailDomains(ctx context.Context) ([]nocoah.MailDomain, error) {
	resp, err := c.httpClient.Get(ctx, "/domains", nil)
	if err != nil {
		return nil, fmt.Errorf("listing mail domains: %w", err)
	}

	var envelope struct {
		Domains []nocoah.MailDomain `json:"domains"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing mail domains list: %w", err)
	}

	return envelope.Domains, nil
}

// GetMailDomain implements nocoah.MailClient.GetMailDomain.
func (c *MailClient) GetMailDomain(ctx context.Context, domainID string) (*nocoah.MailDomain, error) {
	if domainID == "" {
		return nil, nocoah.ErrIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/domains/"+domainID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting mail domain: %w", err)
	}

	var envelope struct {
		Domain nocoah.MailDomain `json:"domain"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing mail domain: %w", err)
	}

	return &envelope.Domain, nil
}

// CreateMailDomain implements nocoah.MailClient.CreateMailDomain.
func (c *MailClient) CreateMailDomain(ctx context.Context, req *nocoah.MailDomainCreateRequest) (*nocoah.MailDomain, error) {
	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	if req.Name == "" {
		return nil, nocoah.ErrNameRequired
	}

	body := map[string]interface{}{"domain": req}

	resp, err := c.httpClient.Post(ctx, "/domains", body)
	if err != nil {
		return nil, fmt.Errorf("creating mail domain: %w", err)
	}

	var envelope struct {
		Domain nocoah.MailDomain `json:"domain"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing mail domain response: %w", err)
	}

	return &envelope.Domain, nil
}

// DeleteMailDomain implements nocoah.MailClient.DeleteMailDomain.
func (c *MailClient) DeleteMailDomain(ctx context.Context, domainID string) error {
	if domainID == "" {
		return nocoah.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, "/domains/"+domainID)
	if err != nil {
		return fmt.Errorf("deleting mail domain: %w", err)
	}

	return nil
}
