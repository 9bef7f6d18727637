package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/dto"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/quality"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxSyntheticRows = 100000

	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrInvalidRowCount  = errors.New("row count must be between 1 and 100000")
	ErrInvalidPageRange = errors.New("invalid page parameters")
)

// DashboardConfig holds the scoring settings shared by every request
type DashboardConfig struct {
	FeeRate             decimal.Decimal
	DefaultTopMerchants int
	MaxUploadRows       int
}

type dashboardService struct {
	datasetRepo  repositories.DatasetRepositoryInterface
	metrics      MetricsRecorderInterface
	newGenerator GeneratorFactory
	config       DashboardConfig
}

// NewDashboardService creates a dashboard service. Scored views are never
// stored: every read re-runs the pipeline over the dataset's raw records.
func NewDashboardService(
	datasetRepo repositories.DatasetRepositoryInterface,
	metrics MetricsRecorderInterface,
	newGenerator GeneratorFactory,
	config DashboardConfig,
) DashboardServiceInterface {
	if config.DefaultTopMerchants <= 0 {
		config.DefaultTopMerchants = quality.DefaultTopMerchants
	}
	return &dashboardService{
		datasetRepo:  datasetRepo,
		metrics:      metrics,
		newGenerator: newGenerator,
		config:       config,
	}
}

// NewGeneratorFactory returns a factory whose generators date records
// relative to clock().
func NewGeneratorFactory(clock func() time.Time) GeneratorFactory {
	return func(seed int64) DatasetGeneratorInterface {
		return NewDatasetGenerator(seed, clock())
	}
}

func (s *dashboardService) CreateFromUpload(filename string, r io.Reader) (*models.Dataset, *loader.Result, error) {
	start := time.Now()

	result, err := loader.Load(filename, r, loader.Options{MaxRows: s.config.MaxUploadRows})
	if err != nil {
		s.metrics.IncrementCounter("dataset.load.failed", map[string]string{
			"reason": loadFailureReason(err),
		})
		slog.Warn("dataset upload rejected",
			"filename", filename,
			"error", err)
		return nil, nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}

	dataset := &models.Dataset{
		Name:        name,
		Source:      models.DatasetSourceUpload,
		SkippedRows: result.SkippedRows,
		Records:     toDatasetRecords(result.Records),
	}

	if err := s.datasetRepo.Create(dataset); err != nil {
		slog.Error("failed to store uploaded dataset",
			"filename", filename,
			"error", err)
		return nil, nil, fmt.Errorf("failed to store dataset: %w", err)
	}

	s.recordLoaded(models.DatasetSourceUpload, dataset, time.Since(start))

	slog.Info("dataset uploaded",
		"dataset_id", dataset.ID,
		"filename", name,
		"rows", dataset.RowCount,
		"skipped_rows", result.SkippedRows,
		"warnings", len(result.Warnings))

	return dataset, result, nil
}

func (s *dashboardService) CreateSynthetic(req dto.GenerateDatasetRequest) (*models.Dataset, error) {
	start := time.Now()

	rows := req.Rows
	if rows == 0 {
		rows = DefaultSyntheticRows
	}
	if rows < 0 || rows > MaxSyntheticRows {
		return nil, ErrInvalidRowCount
	}

	seed := DefaultSyntheticSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = fmt.Sprintf("synthetic-seed-%d", seed)
	}

	records := s.newGenerator(seed).Generate(rows)

	dataset := &models.Dataset{
		Name:    name,
		Source:  models.DatasetSourceSynthetic,
		Seed:    &seed,
		Records: toDatasetRecords(records),
	}

	if err := s.datasetRepo.Create(dataset); err != nil {
		slog.Error("failed to store synthetic dataset",
			"seed", seed,
			"rows", rows,
			"error", err)
		return nil, fmt.Errorf("failed to store dataset: %w", err)
	}

	s.recordLoaded(models.DatasetSourceSynthetic, dataset, time.Since(start))

	slog.Info("synthetic dataset generated",
		"dataset_id", dataset.ID,
		"seed", seed,
		"rows", rows)

	return dataset, nil
}

func (s *dashboardService) GetDataset(id uuid.UUID) (*models.Dataset, error) {
	dataset, err := s.datasetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDatasetNotFound) {
			return nil, ErrDatasetNotFound
		}
		slog.Error("failed to get dataset",
			"dataset_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return dataset, nil
}

func (s *dashboardService) ListDatasets(page, pageSize int) ([]models.Dataset, int64, error) {
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 0 || pageSize < 0 || pageSize > maxPageSize {
		return nil, 0, ErrInvalidPageRange
	}

	datasets, total, err := s.datasetRepo.List((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, total, nil
}

func (s *dashboardService) ListRecords(id uuid.UUID, filter models.RecordFilter) ([]models.ScoredRecord, error) {
	scored, err := s.scoreDataset(id)
	if err != nil {
		return nil, err
	}
	return quality.Filter(scored, filter), nil
}

func (s *dashboardService) GetCompletion(id uuid.UUID) (*dto.CompletionResponse, error) {
	scored, err := s.scoreDataset(id)
	if err != nil {
		return nil, err
	}

	ratio := quality.CompletionRatio(scored)
	complete := 0
	for _, r := range scored {
		if r.IsComplete() {
			complete++
		}
	}

	s.metrics.RecordGauge("dataset.completion_ratio", ratio, nil)

	return &dto.CompletionResponse{
		TotalTransactions:     len(scored),
		CompletedTransactions: complete,
		CompletionRatio:       ratio,
		CompletionPercent:     quality.CompletionPercent(ratio),
		Caption:               quality.CompletionCaption(ratio),
	}, nil
}

func (s *dashboardService) GetMerchantSavings(id uuid.UUID, limit int) (*dto.MerchantSavingsResponse, error) {
	if limit <= 0 {
		limit = s.config.DefaultTopMerchants
	}

	scored, err := s.scoreDataset(id)
	if err != nil {
		return nil, err
	}

	return &dto.MerchantSavingsResponse{
		Merchants: quality.TopMerchants(quality.AggregateByMerchant(scored), limit),
		Limit:     limit,
	}, nil
}

func (s *dashboardService) CalculateSavings(id uuid.UUID, fixedIDs []string) (*dto.SavingsResponse, error) {
	scored, err := s.scoreDataset(id)
	if err != nil {
		return nil, err
	}

	selected := quality.SelectionSet(fixedIDs)
	realized := quality.TotalSavingsForSelection(scored, selected)

	realizedFloat, _ := realized.Float64()
	s.metrics.RecordGauge("savings.realized", realizedFloat, nil)

	return &dto.SavingsResponse{
		RealizedSavings:          realized,
		RealizedSavingsFormatted: quality.FormatCurrency(realized),
		TotalPotentialSavings:    quality.TotalPotentialSavings(scored),
		FixedTransactions:        quality.SelectedRecords(scored, selected),
		UnknownIDs:               unknownIDs(scored, fixedIDs),
	}, nil
}

func (s *dashboardService) GetSummary(id uuid.UUID, fixedIDs []string, topK int) (*quality.Summary, error) {
	if topK <= 0 {
		topK = s.config.DefaultTopMerchants
	}

	scored, err := s.scoreDataset(id)
	if err != nil {
		return nil, err
	}

	summary := quality.Summarize(scored, quality.SelectionSet(fixedIDs), topK)
	s.metrics.RecordGauge("dataset.completion_ratio", summary.CompletionRatio, nil)

	return summary, nil
}

func (s *dashboardService) DeleteDataset(id uuid.UUID) error {
	if err := s.datasetRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrDatasetNotFound) {
			return ErrDatasetNotFound
		}
		return fmt.Errorf("failed to delete dataset: %w", err)
	}

	s.metrics.IncrementCounter("dataset.deleted", nil)
	slog.Info("dataset deleted", "dataset_id", id)
	return nil
}

// scoreDataset loads a dataset and scores it with the configured fee rate.
func (s *dashboardService) scoreDataset(id uuid.UUID) ([]models.ScoredRecord, error) {
	dataset, err := s.GetDataset(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	scored := quality.Score(dataset.TransactionRecords(), s.config.FeeRate)
	s.metrics.RecordProcessingTime("dataset.scoring", time.Since(start))

	return scored, nil
}

func (s *dashboardService) recordLoaded(source string, dataset *models.Dataset, elapsed time.Duration) {
	tags := map[string]string{"source": source}
	s.metrics.IncrementCounter("dataset.loaded", tags)
	s.metrics.RecordGauge("dataset.rows", float64(dataset.RowCount), tags)
	if dataset.SkippedRows > 0 {
		s.metrics.RecordGauge("dataset.rows_skipped", float64(dataset.SkippedRows), tags)
	}
	s.metrics.RecordProcessingTime("dataset.load", elapsed)
}

func toDatasetRecords(records []models.TransactionRecord) []models.DatasetRecord {
	stored := make([]models.DatasetRecord, len(records))
	for i, r := range records {
		stored[i] = models.NewDatasetRecord(i, r)
	}
	return stored
}

// unknownIDs lists requested ids that match no record, in request order.
func unknownIDs(scored []models.ScoredRecord, ids []string) []string {
	known := make(map[string]struct{}, len(scored))
	for _, r := range scored {
		known[r.ID] = struct{}{}
	}

	var unknown []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unknown = append(unknown, id)
	}
	return unknown
}

func loadFailureReason(err error) string {
	switch {
	case errors.Is(err, loader.ErrMissingColumns):
		return "missing_columns"
	case errors.Is(err, loader.ErrEmptyInput):
		return "empty"
	case errors.Is(err, loader.ErrUnsupportedType):
		return "unsupported_type"
	case errors.Is(err, loader.ErrTooManyRows):
		return "too_many_rows"
	default:
		return "unreadable"
	}
}
