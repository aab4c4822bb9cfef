package client

import (
	"context"
	"net/http/httptest"

	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
)

// stubTokens satisfies auth.TokenProvider with a fixed token.
type stubTokens struct {
	token string
}

func (s stubTokens) GetToken(_ context.Context) (string, error) {
	return s.token, nil
}

// newTestDispatcher builds a dispatcher pointed at the test server.
func newTestDispatcher(server *httptest.Server) *nchttp.Client {
	return nchttp.NewClient(server.URL, stubTokens{token: "test-token"})
}
