package repositories

import (
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/google/uuid"
)

// DatasetRepositoryInterface defines the contract for dataset storage
type DatasetRepositoryInterface interface {
	Create(dataset *models.Dataset) error
	GetByID(id uuid.UUID) (*models.Dataset, error)
	List(offset, limit int) ([]models.Dataset, int64, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}
