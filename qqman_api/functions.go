package qqman_api

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrNotNumeric = errors.New("value is not numeric")

// Convert a p-value field to a float64, missing values become NaN
func stringToPValue(input string) (float64, error) {
	value := strings.TrimSpace(input)
	switch strings.ToLower(value) {
	case "", ".", "na", "nan":
		return math.NaN(), nil
	}
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot convert '%s' to a p-value", ErrNotNumeric, input)
	}
	return result, nil
}

// Convert a base-pair position field to a non-negative integer
func stringToPosition(input string) (int64, error) {
	value := strings.TrimSpace(input)
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Some tools write positions in scientific notation
		float, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil || float != math.Trunc(float) || math.IsInf(float, 0) {
			return 0, fmt.Errorf("%w: cannot convert '%s' to a base-pair position", ErrNotNumeric, input)
		}
		result = int64(float)
	}
	if result < 0 {
		return 0, fmt.Errorf("%w: negative base-pair position '%s'", ErrNotNumeric, input)
	}
	return result, nil
}

// Calculate -log10 of a p-value
func negLog10(p float64) float64 {
	return -math.Log10(p)
}
