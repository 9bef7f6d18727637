package models

import (
	"errors"
	"fmt"
	"strings"
)

// Filter facets offered by the records table.
const (
	FacetMissingZip   = "missing_zip"
	FacetMissingTaxID = "missing_tax_id"
	FacetComplete     = "complete"
)

var ErrInvalidFacet = errors.New("invalid record filter facet")

// RecordFilter selects which scored records are shown. A record matches when
// any enabled facet applies to it.
type RecordFilter struct {
	MissingZip   bool
	MissingTaxID bool
	Complete     bool
}

// DefaultRecordFilter shows every record that is missing a reference field.
func DefaultRecordFilter() RecordFilter {
	return RecordFilter{MissingZip: true, MissingTaxID: true}
}

// AllRecordsFilter shows every record.
func AllRecordsFilter() RecordFilter {
	return RecordFilter{MissingZip: true, MissingTaxID: true, Complete: true}
}

// Matches reports whether the scored record passes the filter.
func (f RecordFilter) Matches(r ScoredRecord) bool {
	return (f.MissingZip && r.MissingPostalCode) ||
		(f.MissingTaxID && r.MissingTaxID) ||
		(f.Complete && !r.HasMissingInfo)
}

// Facets returns the enabled facet names in display order.
func (f RecordFilter) Facets() []string {
	facets := make([]string, 0, 3)
	if f.MissingZip {
		facets = append(facets, FacetMissingZip)
	}
	if f.MissingTaxID {
		facets = append(facets, FacetMissingTaxID)
	}
	if f.Complete {
		facets = append(facets, FacetComplete)
	}
	return facets
}

// ParseRecordFilter parses a comma separated facet list such as
// "missing_zip,complete". Blank input yields the default filter.
func ParseRecordFilter(raw string) (RecordFilter, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultRecordFilter(), nil
	}

	var f RecordFilter
	for _, part := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case FacetMissingZip:
			f.MissingZip = true
		case FacetMissingTaxID:
			f.MissingTaxID = true
		case FacetComplete:
			f.Complete = true
		case "all":
			return AllRecordsFilter(), nil
		case "":
			continue
		default:
			return RecordFilter{}, fmt.Errorf("%w: %q", ErrInvalidFacet, part)
		}
	}
	return f, nil
}
