package services

import (
	"io"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/dto"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/quality"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardServiceInterface exposes the data quality dashboard over stored datasets
type DashboardServiceInterface interface {
	CreateFromUpload(filename string, r io.Reader) (*models.Dataset, *loader.Result, error)
	CreateSynthetic(req dto.GenerateDatasetRequest) (*models.Dataset, error)
	GetDataset(id uuid.UUID) (*models.Dataset, error)
	ListDatasets(page, pageSize int) ([]models.Dataset, int64, error)
	ListRecords(id uuid.UUID, filter models.RecordFilter) ([]models.ScoredRecord, error)
	GetCompletion(id uuid.UUID) (*dto.CompletionResponse, error)
	GetMerchantSavings(id uuid.UUID, limit int) (*dto.MerchantSavingsResponse, error)
	CalculateSavings(id uuid.UUID, fixedIDs []string) (*dto.SavingsResponse, error)
	GetSummary(id uuid.UUID, fixedIDs []string, topK int) (*quality.Summary, error)
	DeleteDataset(id uuid.UUID) error
}

// DatasetGeneratorInterface generates seeded synthetic transaction tables
type DatasetGeneratorInterface interface {
	Generate(n int) []models.TransactionRecord
	GetMerchantPool() []string
	SelectRandomMerchant() string
	GenerateAmount() decimal.Decimal
	GenerateDate() time.Time
}

// GeneratorFactory builds a generator for a seed
type GeneratorFactory func(seed int64) DatasetGeneratorInterface

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
