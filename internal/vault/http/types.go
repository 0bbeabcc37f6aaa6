package http

import "github.com/leoslab/platform-api/internal/vault"

// Handler bundles the dependencies for Vault HTTP endpoints.
type Handler struct {
	client *vault.Client
}

func New(client *vault.Client) *Handler {
	return &Handler{client: client}
}
