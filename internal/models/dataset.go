package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DatasetSourceSynthetic = "synthetic"
	DatasetSourceUpload    = "upload"
)

var (
	ErrInvalidDatasetSource = errors.New("invalid dataset source")
	ErrDatasetNameRequired  = errors.New("dataset name is required")
)

// Dataset is a loaded input table. Only the raw records are stored; scored
// views are derived on every read.
type Dataset struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Source      string          `gorm:"type:varchar(20);not null" json:"source"`
	Seed        *int64          `json:"seed,omitempty"`
	RowCount    int             `gorm:"not null;default:0" json:"row_count"`
	SkippedRows int             `gorm:"not null;default:0" json:"skipped_rows"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	Records     []DatasetRecord `gorm:"foreignKey:DatasetID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Dataset
func (d *Dataset) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	return d.Validate()
}

// Validate validates the dataset fields
func (d *Dataset) Validate() error {
	if d.Name == "" {
		return ErrDatasetNameRequired
	}

	if d.Source != DatasetSourceSynthetic && d.Source != DatasetSourceUpload {
		return ErrInvalidDatasetSource
	}

	return nil
}

// TransactionRecords returns the stored rows in load order.
func (d *Dataset) TransactionRecords() []TransactionRecord {
	records := make([]TransactionRecord, len(d.Records))
	for i := range d.Records {
		records[i] = d.Records[i].ToTransactionRecord()
	}
	return records
}

// DatasetRecord is the stored form of a TransactionRecord.
type DatasetRecord struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	DatasetID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_dataset_records_position,priority:1" json:"-"`
	Position      int             `gorm:"not null;index:idx_dataset_records_position,priority:2" json:"-"`
	TransactionID string          `gorm:"type:varchar(100);not null" json:"transaction_id"`
	Merchant      string          `gorm:"type:varchar(255);not null" json:"merchant"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"amount"`
	PostalCode    *string         `gorm:"type:varchar(20)" json:"zip_code"`
	TaxID         *string         `gorm:"type:varchar(50)" json:"tax_id"`
	Date          *time.Time      `json:"date,omitempty"`
}

// NewDatasetRecord converts an input record into its stored form.
func NewDatasetRecord(position int, r TransactionRecord) DatasetRecord {
	return DatasetRecord{
		Position:      position,
		TransactionID: r.ID,
		Merchant:      r.Merchant,
		Amount:        r.Amount,
		PostalCode:    r.PostalCode,
		TaxID:         r.TaxID,
		Date:          r.Date,
	}
}

// ToTransactionRecord converts the stored row back into an input record.
func (r DatasetRecord) ToTransactionRecord() TransactionRecord {
	return TransactionRecord{
		ID:         r.TransactionID,
		Merchant:   r.Merchant,
		Amount:     r.Amount,
		PostalCode: r.PostalCode,
		TaxID:      r.TaxID,
		Date:       r.Date,
	}
}
