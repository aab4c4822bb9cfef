package client

import (
	"context"
	"encoding/json"
	"fmt"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// DNSClient implements nocoah.DNSClient.
type DNSClient struct {
	httpClient *nchttp.Client
}

// NewDNSClient creates a new DNS client.
func NewDNSClient(httpClient *nchttp.Client) *DNSClient {
	return &DNSClient{httpClient: httpClient}
}

// ListDomains implements nocoah.DNSClient.ListDomains.
func (c *DNSClient) ListDomains(ctx context.Context) ([]nocoah.Domain, error) {
	resp, err := c.httpClient.Get(ctx, "/domains", nil)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	var envelope struct {
		Domains []nocoah.Domain `json:"domains"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing domains list: %w", err)
	}

	return envelope.Domains, nil
}

// GetDomain implements nocoah.DNSClient.GetDomain.
func (c *DNSClient) GetDomain(ctx context.Context, domainID string) (*nocoah.Domain, error) {
	if domainID == "" {
		return nil, nocoah.ErrIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/domains/"+domainID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting domain: %w", err)
	}

	var domain nocoah.Domain

	err = json.Unmarshal(resp.Body, &domain)
	if err != nil {
		return nil, fmt.Errorf("parsing domain: %w", err)
	}

	return &domain, nil
}

// CreateDomain implements nocoah.DNSClient.CreateDomain.
func (c *DNSClient) CreateDomain(ctx context.Context, req *nocoah.DomainCreateRequest) (*nocoah.Domain, error) {
	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	if req.Name == "" {
		return nil, nocoah.ErrNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/domains", req)
	if err != nil {
		return nil, fmt.Errorf("creating domain: %w", err)
	}

	var domain nocoah.Domain

	err = json.Unmarshal(resp.Body, &domain)
	if err != nil {
		return nil, fmt.Errorf("parsing domain response: %w", err)
	}

	return &domain, nil
}

// DeleteDomain implements nocoah.DNSClient.DeleteDomain.
func (c *DNSClient) DeleteDomain(ctx context.Context, domainID string) error {
	if domainID == "" {
		return nocoah.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, "/domains/"+domainID)
	if err != nil {
		return fmt.Errorf("deleting domain: %w", err)
	}

	return nil
}

// ListRecords implements nocoah.DNSClient.ListRecords.
func (c *DNSClient) ListRecords(ctx context.Context, domainID string) ([]nocoah.Record, error) {
	if domainID == "" {
		return nil, nocoah.ErrIDRequired
	}

	resp, err := c.httpClient.Get(ctx, "/domains/"+domainID+"/records", nil)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	var envelope struct {
		Records []nocoah.Record `json:"records"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing records list: %w", err)
	}

	return envelope.Records, nil
}

// CreateRecord implements nocoah.DNSClient.CreateRecord.
func (c *DNSClient) CreateRecord(ctx context.Context, domainID string, req *nocoah.RecordCreateRequest) (*nocoah.Record, error) {
	if domainID == "" {
		return nil, nocoah.ErrIDRequired
	}

	if req == nil {
		return nil, nocoah.ErrBodyRequired
	}

	if req.Name == "" {
		return nil, nocoah.ErrNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/domains/"+domainID+"/records", req)
	if err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	var record nocoah.Record

	err = json.Unmarshal(resp.Body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// DeleteRecord implements nocoah.DNSClient.DeleteRecord.
func (c *DNSClient) DeleteRecord(ctx context.Context, domainID, recordID string) error {
	if domainID == "" || recordID == "" {
		return nocoah.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, "/domains/"+domainID+"/records/"+recordID)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}
