package qqman_api

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// The identifiers of the variants to highlight
type HighlightSet map[string]struct{}

// Check if the identifier is part of the set
func (set HighlightSet) Contains(id string) bool {
	_, ok := set[id]
	return ok
}

func (set HighlightSet) add(id string) {
	id = strings.TrimSpace(id)
	if id != "" {
		set[id] = struct{}{}
	}
}

// Resolve the highlight mode to a set of identifiers:
//
//	sig     all variants with a p-value below sigp
//	none    nothing
//	a file  one identifier per line
//	other   a comma separated list of identifiers
func ResolveHighlights(mode string, table *Table, sigp float64) (HighlightSet, error) {
	set := HighlightSet{}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "none", "":
		return set, nil
	case "sig":
		return significantIds(table, sigp)
	}

	if info, err := os.Stat(mode); err == nil && info.Mode().IsRegular() {
		return readHighlightFile(mode)
	}
	if looksLikePath(mode) {
		logger := log.New(os.Stderr, "", 0)
		logger.Printf("The highlight file '%s' does not exist, using it as a variant identifier", mode)
	}

	for _, id := range strings.Split(mode, ",") {
		set.add(id)
	}
	return set, nil
}

// A single value with a directory separator or a file extension
func looksLikePath(mode string) bool {
	if strings.Contains(mode, ",") {
		return false
	}
	return strings.ContainsRune(mode, '/') || filepath.Ext(mode) != ""
}

func significantIds(table *Table, sigp float64) (HighlightSet, error) {
	set := HighlightSet{}
	if err := table.Require(ColumnP, ColumnRsid); err != nil {
		return nil, err
	}

	pValues, err := table.PValues()
	if err != nil {
		return nil, err
	}
	ids, err := table.Column(ColumnRsid)
	if err != nil {
		return nil, err
	}

	for i, p := range pValues {
		if p < sigp {
			set.add(ids[i])
		}
	}
	return set, nil
}

func readHighlightFile(file string) (HighlightSet, error) {
	set := HighlightSet{}

	openFile, err := os.Open(file)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer openFile.Close()

	scanner := bufio.NewScanner(openFile)
	for scanner.Scan() {
		set.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(fmt.Errorf("failed to read the highlight file '%s': %w", file, err))
	}
	return set, nil
}
