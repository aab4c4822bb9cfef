package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildInfo is the release metadata stamped at build time, together
// with the toolchain and platform the binary was compiled for.
type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Built     string `json:"built" yaml:"built"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the nocoah CLI release, build metadata, and platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildInfo{
				Version:   version,
				Commit:    commit,
				Built:     date,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			switch viper.GetString("output") {
			case "json":
				return outputJSON(info)
			case "yaml":
				return outputYAML(info)
			default:
				fmt.Printf("nocoah %s (commit %s, built %s)\n", info.Version, info.Commit, info.Built)
				fmt.Printf("%s %s\n", info.GoVersion, info.Platform)
			}

			return nil
		},
	}
}
