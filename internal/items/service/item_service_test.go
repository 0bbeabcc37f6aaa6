package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoslab/platform-api/internal/db"
	"github.com/leoslab/platform-api/internal/items/domain"
	"github.com/leoslab/platform-api/internal/items/repository"
)

func newService(t *testing.T) *ItemService {
	return NewItemService(repository.NewItemRepository(db.NewTestDB(t)))
}

func TestCreateTrimsName(t *testing.T) {
	svc := newService(t)

	item, err := svc.Create(context.Background(), &domain.CreateItemRequest{Name: "  padded  "})
	require.NoError(t, err)
	assert.Equal(t, "padded", item.Name)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), &domain.CreateItemRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestPartialUpdateKeepsOmittedFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	desc := "original description"
	created, err := svc.Create(ctx, &domain.CreateItemRequest{Name: "thing", Description: &desc})
	require.NoError(t, err)

	name := "renamed"
	updated, err := svc.Update(ctx, created.ID, &domain.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestUpdateCanClearDescription(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	desc := "to be kept"
	created, err := svc.Create(ctx, &domain.CreateItemRequest{Name: "thing", Description: &desc})
	require.NoError(t, err)

	newDesc := "replaced"
	updated, err := svc.Update(ctx, created.ID, &domain.UpdateItemRequest{Description: &newDesc})
	require.NoError(t, err)
	assert.Equal(t, "thing", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "replaced", *updated.Description)
}

func TestUpdateRejectsBlankName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateItemRequest{Name: "thing"})
	require.NoError(t, err)

	blank := " "
	_, err = svc.Update(ctx, created.ID, &domain.UpdateItemRequest{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestUpdateMissingItem(t *testing.T) {
	svc := newService(t)

	name := "anything"
	_, err := svc.Update(context.Background(), 1234, &domain.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
