package bootstrap

import (
	"context"
	"database/sql"
	"log"

	"github.com/leoslab/platform-api/internal/items/repository"
)

// Seed inserts sample items when the table is empty.
func Seed(ctx context.Context, conn *sql.DB) error {
	repo := repository.NewItemRepository(conn)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Database already contains %d items", count)
		return nil
	}

	samples := []struct {
		name        string
		description string
	}{
		{"Item One", "Description for item one"},
		{"Item Two", "Description for item two"},
		{"Item Three", "Description for item three"},
	}

	for _, s := range samples {
		desc := s.description
		if _, err := repo.Create(ctx, s.name, &desc); err != nil {
			return err
		}
	}

	log.Printf("Initialized database with %d sample items", len(samples))
	return nil
}
