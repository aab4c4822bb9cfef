// Package nocoah defines the public surface of the ConoHa API client:
// the Client interface, configuration, credentials, typed resource
// records, and the error taxonomy shared by every service client.
//
// Use github.com/Nia-TN1012/nocoah-sub000/pkg/nocoahclient to construct
// a working client.
package nocoah
