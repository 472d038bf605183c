package qqman_api

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

var ErrEmptyTable = errors.New("the input file has no header row")

// Read a comma (sep=',') or tab (sep='\t') separated file into a Table.
// Files ending in .gz are decompressed, BGZF files included.
func ReadTable(file string, sep rune) (*Table, error) {
	logger := log.New(os.Stderr, "", 0)

	openFile, err := os.Open(file)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer openFile.Close()

	var input io.Reader = openFile
	if strings.HasSuffix(file, ".gz") {
		closer, reader, err := decompress(openFile)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("failed to decompress '%s': %w", file, err))
		}
		defer closer.Close()
		input = reader
	}

	table, err := parseTable(input, sep)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("failed to read '%s': %w", file, err))
	}

	logger.Printf("Read %d rows with columns %s from %s", len(table.Rows), strings.Join(table.Header, ","), file)
	return table, nil
}

// Choose the BGZF reader for blocked gzip files and a regular gzip reader otherwise
func decompress(input io.Reader) (io.Closer, io.Reader, error) {
	buffered := bufio.NewReader(input)
	head, _ := buffered.Peek(14)

	if isBgzf(head) {
		bgReader, err := bgzf.NewReader(buffered, 1)
		if err != nil {
			return nil, nil, err
		}
		return bgReader, bgReader, nil
	}

	gzReader, err := gzip.NewReader(buffered)
	if err != nil {
		return nil, nil, err
	}
	return gzReader, gzReader, nil
}

// A BGZF block is a gzip member with the FEXTRA flag and a 'BC' subfield
func isBgzf(head []byte) bool {
	if len(head) < 14 {
		return false
	}
	return head[0] == 0x1f && head[1] == 0x8b && head[3]&0x04 != 0 && head[12] == 'B' && head[13] == 'C'
}

func parseTable(input io.Reader, sep rune) (*Table, error) {
	reader := csv.NewReader(input)
	reader.Comma = sep
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, err
	}

	table := &Table{Header: header}
	table.normalizeHeader()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}
