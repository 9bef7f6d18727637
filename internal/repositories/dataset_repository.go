package repositories

import (
	"errors"
	"fmt"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDatasetNotFound = errors.New("dataset not found")
)

// recordBatchSize keeps each insert below SQLite's bound-parameter limit.
const recordBatchSize = 100

// datasetRepository implements DatasetRepositoryInterface
type datasetRepository struct {
	db *gorm.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *gorm.DB) DatasetRepositoryInterface {
	return &datasetRepository{
		db: db,
	}
}

// Create stores a dataset and its records in a single database transaction.
// Record positions are assigned from slice order.
func (r *datasetRepository) Create(dataset *models.Dataset) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		records := dataset.Records
		dataset.RowCount = len(records)

		if err := tx.Omit("Records").Create(dataset).Error; err != nil {
			return fmt.Errorf("failed to create dataset: %w", err)
		}

		if len(records) == 0 {
			return nil
		}

		for i := range records {
			records[i].DatasetID = dataset.ID
			records[i].Position = i
		}

		if err := tx.CreateInBatches(&records, recordBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create dataset records: %w", err)
		}

		dataset.Records = records
		return nil
	})
}

// GetByID retrieves a dataset with its records in load order
func (r *datasetRepository) GetByID(id uuid.UUID) (*models.Dataset, error) {
	var dataset models.Dataset
	err := r.db.
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&dataset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return &dataset, nil
}

// List retrieves dataset metadata, newest first, without records
func (r *datasetRepository) List(offset, limit int) ([]models.Dataset, int64, error) {
	var datasets []models.Dataset
	var total int64

	if err := r.db.Model(&models.Dataset{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count datasets: %w", err)
	}

	if err := r.db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&datasets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list datasets: %w", err)
	}

	return datasets, total, nil
}

// Delete removes a dataset and its records
func (r *datasetRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dataset_id = ?", id).Delete(&models.DatasetRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete dataset records: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.Dataset{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete dataset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrDatasetNotFound
		}
		return nil
	})
}

// Count returns the number of stored datasets
func (r *datasetRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Dataset{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count datasets: %w", err)
	}
	return total, nil
}
