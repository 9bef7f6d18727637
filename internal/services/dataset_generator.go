package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	DefaultSyntheticRows = 1000
	DefaultSyntheticSeed = int64(42)

	transactionIDBase = 100000
	minAmount         = 5.00
	maxAmount         = 500.00
	maxAgeDays        = 365
	hoursInDay        = 24

	// pcgStream is the fixed PCG stream; the caller's seed selects the state.
	pcgStream = 0x9e3779b97f4a7c15
)

// weightedValue is an optional string drawn with a given probability. A nil
// value produces a missing field.
type weightedValue struct {
	value  *string
	weight float64
}

type datasetGenerator struct {
	faker        *gofakeit.Faker
	now          time.Time
	merchantPool []string
	postalCodes  []weightedValue
	taxIDs       []weightedValue
}

// NewDatasetGenerator creates a synthetic transaction generator. The output
// is a pure function of seed and now: no process-wide random state is read.
func NewDatasetGenerator(seed int64, now time.Time) DatasetGeneratorInterface {
	source := rand.NewPCG(uint64(seed), pcgStream)
	return &datasetGenerator{
		faker:        gofakeit.NewFaker(source, false),
		now:          now,
		merchantPool: initializeMerchantPool(),
		postalCodes:  initializePostalCodes(),
		taxIDs:       initializeTaxIDs(),
	}
}

func initializeMerchantPool() []string {
	return []string{
		"Amazon", "Walmart", "Target", "Costco", "Best Buy",
		"Apple", "Nike", "Starbucks", "Home Depot", "Uber",
	}
}

// initializePostalCodes: five codes at 18% each, missing 10%.
func initializePostalCodes() []weightedValue {
	return []weightedValue{
		{models.StringPtr("10001"), 0.18},
		{models.StringPtr("30301"), 0.18},
		{models.StringPtr("60601"), 0.18},
		{models.StringPtr("94105"), 0.18},
		{models.StringPtr("75201"), 0.18},
		{nil, 0.10},
	}
}

// initializeTaxIDs: three ids at 30% each, missing 10%.
func initializeTaxIDs() []weightedValue {
	return []weightedValue{
		{models.StringPtr("TX123"), 0.30},
		{models.StringPtr("TX456"), 0.30},
		{models.StringPtr("TX789"), 0.30},
		{nil, 0.10},
	}
}

// GetMerchantPool returns the merchant pool
func (g *datasetGenerator) GetMerchantPool() []string {
	return append([]string(nil), g.merchantPool...)
}

// Generate produces n records with ids TXN-100000 onwards.
func (g *datasetGenerator) Generate(n int) []models.TransactionRecord {
	if n <= 0 {
		return []models.TransactionRecord{}
	}

	records := make([]models.TransactionRecord, n)
	for i := range records {
		records[i] = g.generateRecord(i)
	}
	return records
}

func (g *datasetGenerator) generateRecord(i int) models.TransactionRecord {
	date := g.GenerateDate()
	return models.TransactionRecord{
		ID:         fmt.Sprintf("TXN-%d", transactionIDBase+i),
		Merchant:   g.SelectRandomMerchant(),
		Amount:     g.GenerateAmount(),
		PostalCode: g.pick(g.postalCodes),
		TaxID:      g.pick(g.taxIDs),
		Date:       &date,
	}
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *datasetGenerator) SelectRandomMerchant() string {
	return g.faker.RandomString(g.merchantPool)
}

// GenerateAmount draws a uniform amount in [5, 500] rounded to cents.
func (g *datasetGenerator) GenerateAmount() decimal.Decimal {
	amount := g.faker.Float64Range(minAmount, maxAmount)
	return decimal.NewFromFloat(amount).Round(2)
}

// GenerateDate returns a date up to a year before now, in whole days.
func (g *datasetGenerator) GenerateDate() time.Time {
	days := int(g.faker.Float64Range(0, maxAgeDays))
	return g.now.Add(-time.Duration(days) * hoursInDay * time.Hour)
}

func (g *datasetGenerator) pick(options []weightedValue) *string {
	roll := g.faker.Float64()

	cumulative := 0.0
	for _, opt := range options {
		cumulative += opt.weight
		if roll < cumulative {
			return copyString(opt.value)
		}
	}
	return copyString(options[len(options)-1].value)
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
