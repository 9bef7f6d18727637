package dto

import (
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dataset Request DTOs

// GenerateDatasetRequest represents the request payload for creating a synthetic dataset
type GenerateDatasetRequest struct {
	Name string `json:"name" validate:"omitempty,max=255,dataset_name"`
	Rows int    `json:"rows" validate:"omitempty,min=1,max=100000"`
	Seed *int64 `json:"seed"`
}

// SavingsRequest carries the transactions the user has marked as fixed
type SavingsRequest struct {
	FixedIDs []string `json:"fixed_ids" validate:"omitempty,dive,transaction_id"`
}

// SummaryRequest requests a full dashboard snapshot
type SummaryRequest struct {
	FixedIDs []string `json:"fixed_ids" validate:"omitempty,dive,transaction_id"`
	TopK     int      `json:"top_k" validate:"omitempty,min=1,max=1000"`
}

// ListDatasetsParams contains pagination parameters for listing datasets
type ListDatasetsParams struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// Dataset Response DTOs

// DatasetResponse describes a stored dataset
type DatasetResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	Seed        *int64    `json:"seed,omitempty"`
	RowCount    int       `json:"row_count"`
	SkippedRows int       `json:"skipped_rows"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadResponse describes a dataset created from an uploaded file
type UploadResponse struct {
	Dataset  DatasetResponse     `json:"dataset"`
	Warnings []loader.RowWarning `json:"warnings"`
}

// DatasetListResponse represents a paginated list of datasets
type DatasetListResponse struct {
	Datasets []DatasetResponse `json:"datasets"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// RecordsResponse is the filtered scored table
type RecordsResponse struct {
	Records []models.ScoredRecord `json:"records"`
	Facets  []string              `json:"facets"`
	Total   int                   `json:"total"`
}

// CompletionResponse drives the progress indicator
type CompletionResponse struct {
	TotalTransactions     int     `json:"total_transactions"`
	CompletedTransactions int     `json:"completed_transactions"`
	CompletionRatio       float64 `json:"completion_ratio"`
	CompletionPercent     int     `json:"completion_percent"`
	Caption               string  `json:"caption"`
}

// MerchantSavingsResponse is the merchant bar chart data
type MerchantSavingsResponse struct {
	Merchants []models.MerchantSavings `json:"merchants"`
	Limit     int                      `json:"limit"`
}

// SavingsResponse reports realized savings for the fixed selection
type SavingsResponse struct {
	RealizedSavings          decimal.Decimal       `json:"realized_savings"`
	RealizedSavingsFormatted string                `json:"realized_savings_formatted"`
	TotalPotentialSavings    decimal.Decimal       `json:"total_potential_savings"`
	FixedTransactions        []models.ScoredRecord `json:"fixed_transactions"`
	UnknownIDs               []string              `json:"unknown_ids,omitempty"`
}

// NewDatasetResponse converts a stored dataset into its API form
func NewDatasetResponse(d *models.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:          d.ID,
		Name:        d.Name,
		Source:      d.Source,
		Seed:        d.Seed,
		RowCount:    d.RowCount,
		SkippedRows: d.SkippedRows,
		CreatedAt:   d.CreatedAt,
	}
}
