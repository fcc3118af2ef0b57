package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"linku/linku-api/internal/models"
)

// CatalogRepository serves the program catalog. The catalog is loaded
// once at construction and is read-only for the process lifetime, so
// unsynchronized concurrent reads are safe.
type CatalogRepository interface {
	All() []models.ProgramProfile
	Count() int
}

type catalogRepository struct {
	profiles []models.ProgramProfile
}

func NewCatalogRepository(path string) (CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program catalog: %w", err)
	}

	var profiles []models.ProgramProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse program catalog: %w", err)
	}

	return &catalogRepository{profiles: profiles}, nil
}

func (r *catalogRepository) All() []models.ProgramProfile {
	return r.profiles
}

func (r *catalogRepository) Count() int {
	return len(r.profiles)
}
