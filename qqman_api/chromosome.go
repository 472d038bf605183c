package qqman_api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A chromosome as its rank in the fixed chromosome order, starting at 1
type Chromosome int

const (
	ChrX  Chromosome = 23
	ChrY  Chromosome = 24
	ChrMT Chromosome = 25

	// The number of chromosomes in the enumeration
	NumChromosomes = 25
)

var ErrUnknownChromosome = errors.New("unknown chromosome")

// All chromosomes in plotting order
func ChromosomeOrder() []Chromosome {
	order := make([]Chromosome, 0, NumChromosomes)
	for c := Chromosome(1); c <= NumChromosomes; c++ {
		order = append(order, c)
	}
	return order
}

// The canonical label of the chromosome, as used for the axis ticks
func (c Chromosome) String() string {
	switch c {
	case ChrX:
		return "X"
	case ChrY:
		return "Y"
	case ChrMT:
		return "MT"
	}
	return strconv.Itoa(int(c))
}

// Parse a chromosome label like "1", "chr1", "ch-1", "23" or "X"
func ParseChromosome(label string) (Chromosome, error) {
	name := strings.ToUpper(strings.TrimSpace(label))
	for _, prefix := range []string{"CHR", "CH-", "CH"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}

	switch name {
	case "X":
		return ChrX, nil
	case "Y":
		return ChrY, nil
	case "M", "MT":
		return ChrMT, nil
	}

	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > NumChromosomes {
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownChromosome, label)
	}
	return Chromosome(n), nil
}
