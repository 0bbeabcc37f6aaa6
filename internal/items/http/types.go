package http

import "github.com/leoslab/platform-api/internal/items/service"

// Handler bundles the dependencies for items HTTP endpoints.
type Handler struct {
	svc *service.ItemService
}

func New(svc *service.ItemService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
