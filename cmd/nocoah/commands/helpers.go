package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoahclient"
)

// newClient builds an authenticated client from the global flags and
// the usual credential sources.
func newClient(ctx context.Context) (nocoah.Client, error) {
	config := &nocoah.Config{
		ConfigPath: viper.GetString("config"),
		Debug:      viper.GetBool("verbose"),
	}

	client, err := nocoahclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes the value to stdout as indented JSON.
func outputJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// outputYAML writes the value to stdout as YAML.
func outputYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return nil
}
