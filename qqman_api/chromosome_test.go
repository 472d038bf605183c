package qqman_api

import (
	"errors"
	"testing"
)

func TestParseChromosome(t *testing.T) {
	tests := []struct {
		label string
		want  Chromosome
	}{
		{"1", 1},
		{" 22 ", 22},
		{"chr7", 7},
		{"CHR7", 7},
		{"ch-3", 3},
		{"23", ChrX},
		{"X", ChrX},
		{"chrX", ChrX},
		{"y", ChrY},
		{"MT", ChrMT},
		{"chrM", ChrMT},
	}
	for _, tt := range tests {
		got, err := ParseChromosome(tt.label)
		if err != nil {
			t.Errorf("ParseChromosome(%q): %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChromosome(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestParseChromosomeUnknown(t *testing.T) {
	for _, label := range []string{"", "0", "26", "chrUn", "1_random"} {
		if _, err := ParseChromosome(label); !errors.Is(err, ErrUnknownChromosome) {
			t.Errorf("ParseChromosome(%q) err = %v, want ErrUnknownChromosome", label, err)
		}
	}
}

func TestChromosomeOrder(t *testing.T) {
	order := ChromosomeOrder()
	if len(order) != NumChromosomes {
		t.Fatalf("len = %d, want %d", len(order), NumChromosomes)
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("order not increasing at %d: %v", i, order)
		}
	}
	if order[0].String() != "1" || order[22].String() != "X" || order[24].String() != "MT" {
		t.Fatalf("unexpected labels: %v %v %v", order[0], order[22], order[24])
	}
}
