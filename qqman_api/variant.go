package qqman_api

import (
	"fmt"
	"strings"
)

// The p-values of the table in row order. Missing p-values are NaN.
func (table *Table) PValues() ([]float64, error) {
	column, err := table.Column(ColumnP)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(column))
	for i, field := range column {
		values[i], err = stringToPValue(field)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return values, nil
}

// Convert all rows of the table to variants. The rsid column is only
// required (and read) when withId is set.
func (table *Table) Variants(withId bool) ([]Variant, error) {
	required := []string{ColumnChr, ColumnBp, ColumnP}
	if withId {
		required = append(required, ColumnRsid)
	}
	if err := table.Require(required...); err != nil {
		return nil, err
	}

	chrIndex := table.Index(ColumnChr)
	bpIndex := table.Index(ColumnBp)
	pIndex := table.Index(ColumnP)
	idIndex := table.Index(ColumnRsid)

	variants := make([]Variant, len(table.Rows))
	for i, row := range table.Rows {
		variant, err := parseVariant(row, chrIndex, bpIndex, pIndex, idIndex, withId)
		if err != nil {
			// +2 for the header and 1-based numbering
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		variants[i] = variant
	}
	return variants, nil
}

func parseVariant(row []string, chrIndex int, bpIndex int, pIndex int, idIndex int, withId bool) (Variant, error) {
	var (
		variant Variant
		err     error
	)

	variant.Chromosome, err = ParseChromosome(row[chrIndex])
	if err != nil {
		return variant, err
	}
	variant.Pos, err = stringToPosition(row[bpIndex])
	if err != nil {
		return variant, err
	}
	variant.P, err = stringToPValue(row[pIndex])
	if err != nil {
		return variant, err
	}
	if withId {
		variant.Id = strings.TrimSpace(row[idIndex])
	}
	return variant, nil
}
