package service

import (
	"context"
	"strings"

	"github.com/leoslab/platform-api/internal/items/domain"
	"github.com/leoslab/platform-api/internal/items/repository"
)

// ItemService handles business logic for items.
type ItemService struct {
	repo *repository.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns all items.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

// Get returns the item with the given id.
func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the request and stores a new item.
func (s *ItemService) Create(ctx context.Context, req *domain.CreateItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	return s.repo.Create(ctx, name, req.Description)
}

// Update applies a partial update. Fields left nil keep their stored value.
func (s *ItemService) Update(ctx context.Context, id int64, req *domain.UpdateItemRequest) (*domain.Item, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
	}

	description := current.Description
	if req.Description != nil {
		description = req.Description
	}

	return s.repo.Update(ctx, id, name, description)
}

// Delete removes the item with the given id.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
