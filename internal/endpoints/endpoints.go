// Package endpoints holds the static provider/service endpoint table and
// the region substitution that turns a template into a concrete base URL.
package endpoints

import (
	"fmt"
	"strings"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// Service identifies one sibling service within a provider.
type Service string

// Known service keys.
const (
	Identity      Service = "identity"
	Account       Service = "account"
	Compute       Service = "compute"
	BlockStorage  Service = "block_storage"
	Image         Service = "image"
	Network       Service = "network"
	ObjectStorage Service = "object_storage"
	Database      Service = "database"
	DNS           Service = "dns"
	Mail          Service = "mail"
)

// RegionPlaceholder is the single substitution slot every template must
// contain exactly once.
const RegionPlaceholder = "{region}"

// table maps provider -> service -> URL template. Static, process-wide.
var table = map[nocoah.CloudProvider]map[Service]string{
	nocoah.ProviderConoHa: {
		Identity:      "https://identity.{region}.conoha.io/v2.0",
		Account:       "https://account.{region}.conoha.io/v1",
		Compute:       "https://compute.{region}.conoha.io/v2",
		BlockStorage:  "https://block-storage.{region}.conoha.io/v2",
		Image:         "https://image-service.{region}.conoha.io/v2",
		Network:       "https://networking.{region}.conoha.io/v2.0",
		ObjectStorage: "https://object-storage.{region}.conoha.io/v1",
		Database:      "https://database-hosting.{region}.conoha.io/v1",
		DNS:           "https://dns-service.{region}.conoha.io/v1",
		Mail:          "https://mail-hosting.{region}.conoha.io/v1",
	},
}

// allServices is the complete set every provider entry must cover.
var allServices = []Service{
	Identity, Account, Compute, BlockStorage, Image,
	Network, ObjectStorage, Database, DNS, Mail,
}

func init() {
	// The table is static data; a malformed entry is a programming error,
	// so the placeholder invariant is checked once here instead of on
	// every call.
	for provider, services := range table {
		for _, service := range allServices {
			template, ok := services[service]
			if !ok {
				panic(fmt.Sprintf("endpoints: provider %q is missing service %q", provider, service))
			}

			if strings.Count(template, RegionPlaceholder) != 1 {
				panic(fmt.Sprintf("endpoints: template %q must contain exactly one %s slot", template, RegionPlaceholder))
			}
		}
	}
}

// Lookup returns the URL template for the given provider and service.
// It fails closed: an unknown provider or service never falls through to
// another entry.
func Lookup(provider nocoah.CloudProvider, service Service) (string, error) {
	services, ok := table[provider]
	if !ok {
		return "", fmt.Errorf("%w: %q", nocoah.ErrInvalidProvider, provider)
	}

	template, ok := services[service]
	if !ok {
		return "", fmt.Errorf("%w: %q for provider %q", nocoah.ErrNoEndpoint, service, provider)
	}

	return template, nil
}

// Resolve substitutes the region into a template's single slot.
func Resolve(template, region string) (string, error) {
	if region == "" {
		return "", nocoah.ErrInvalidRegion
	}

	return strings.Replace(template, RegionPlaceholder, region, 1), nil
}

// BaseURL looks up and resolves in one step.
func BaseURL(provider nocoah.CloudProvider, service Service, region string) (string, error) {
	template, err := Lookup(provider, service)
	if err != nil {
		return "", err
	}

	return Resolve(template, region)
}
