// Package nocoahclient provides the primary entry point for constructing
// a ConoHa API client that implements the nocoah.Client interface.
//
// It layers credential resolution, the identity session, and one HTTP
// dispatcher per service on top of the interfaces and types defined in
// the nocoah package. Most applications should import nocoahclient to
// build a client, then use the returned nocoah.Client to access the
// service clients, for example Compute(), ObjectStorage(), DNS(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
//	  "github.com/Nia-TN1012/nocoah-sub000/pkg/nocoahclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: resolve credentials from the environment or the
//	  // default config files (~/.nocoah/config, ~/.conoha/config).
//	  cli, err := nocoahclient.New(ctx, &nocoah.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit credentials:
//	  cli, err = nocoahclient.NewWithCredentials(ctx, "api-user", "api-pass", "tenant-id", "tyo1")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use service clients via the nocoah.Client interface
//	  servers, err := cli.Compute().ListServers(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = servers
//	}
//
// # Credential resolution
//
// When the config names no source, the client walks the documented
// precedence chain: explicit credentials, an explicit config file, an
// in-memory account map, the NOCOAH_* environment, the CONOHA_*
// environment, then the default config files. Construction fails with
// nocoah.ErrNoCredentialSource when nothing is found; it never guesses.
//
// # Helpers
//
// The package also provides convenience constructors NewWithCredentials,
// NewWithConfigFile, and NewFromEnv that wrap New with the appropriate
// configuration, plus NewWithIdentity for callers that already hold an
// issued token and want to skip the identity exchange.
package nocoahclient
