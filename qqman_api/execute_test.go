package qqman_api

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v2"
)

const gwasTsv = "CHROM\tPOS\tPVAL\tID\n" +
	"1\t1000\t1e-9\trs1\n" +
	"1\t5000\t0.2\trs2\n" +
	"2\t300\t0.04\trs3\n" +
	"2\t9000\t1\trs4\n" +
	"X\t700\t3e-6\trs5\n"

func testRunConfig(t *testing.T, input string) *RunConfig {
	dir := t.TempDir()
	return &RunConfig{
		Tsv:       input,
		Highlight: "sig",
		QQName:    filepath.Join(dir, "qqplot.png"),
		ManName:   filepath.Join(dir, "manhattan.png"),
		ColChr:    "chrom",
		ColBp:     "POS",
		ColP:      "pval",
		ColRsid:   "id",
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestExecuteBothPlots(t *testing.T) {
	config := testRunConfig(t, writeGzip(t, "gwas.tsv.gz", gwasTsv))
	if err := Execute(config, &bytes.Buffer{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !exists(config.QQName) || !exists(config.ManName) {
		t.Fatalf("expected both plots, qq=%v man=%v", exists(config.QQName), exists(config.ManName))
	}
}

func TestExecuteSinglePlot(t *testing.T) {
	input := writeFile(t, "gwas.tsv", gwasTsv)

	qqOnly := testRunConfig(t, input)
	qqOnly.QQ = true
	if err := Execute(qqOnly, &bytes.Buffer{}); err != nil {
		t.Fatalf("execute qq: %v", err)
	}
	if !exists(qqOnly.QQName) || exists(qqOnly.ManName) {
		t.Fatal("--qq should only write the QQ plot")
	}

	manOnly := testRunConfig(t, input)
	manOnly.Man = true
	manOnly.Highlight = "none"
	if err := Execute(manOnly, &bytes.Buffer{}); err != nil {
		t.Fatalf("execute man: %v", err)
	}
	if exists(manOnly.QQName) || !exists(manOnly.ManName) {
		t.Fatal("--man should only write the Manhattan plot")
	}
}

func TestExecuteCsvWithOptions(t *testing.T) {
	csv := strings.ReplaceAll(gwasTsv, "\t", ",")
	config := testRunConfig(t, "")
	config.Csv = writeFile(t, "gwas.csv", csv)
	config.Highlight = "rs2,rs3"
	config.Options = `{"man":{"rainbow":true,"title":"Rainbow"}}`
	if err := Execute(config, &bytes.Buffer{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !exists(config.ManName) {
		t.Fatal("manhattan plot not written")
	}
}

func TestExecuteInputExclusive(t *testing.T) {
	input := writeFile(t, "gwas.tsv", gwasTsv)

	neither := testRunConfig(t, "")
	both := testRunConfig(t, input)
	both.Csv = input
	for _, config := range []*RunConfig{neither, both} {
		err := Execute(config, &bytes.Buffer{})
		var exitErr cli.ExitCoder
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			t.Fatalf("err = %v, want a usage error", err)
		}
	}
}

func TestExecuteMalformedOptions(t *testing.T) {
	config := testRunConfig(t, writeFile(t, "gwas.tsv", gwasTsv))
	config.Options = `{"qq":{"size":2}`
	if err := Execute(config, &bytes.Buffer{}); err == nil {
		t.Fatal("expected a parse error")
	}
	if exists(config.QQName) {
		t.Fatal("no plot should be written with invalid options")
	}
}

func TestExecuteMissingColumn(t *testing.T) {
	config := testRunConfig(t, writeFile(t, "gwas.tsv", gwasTsv))
	config.ColBp = "position"
	config.Highlight = "none"
	err := Execute(config, &bytes.Buffer{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
	if exists(config.ManName) {
		t.Fatal("manhattan plot written despite a missing column")
	}
}

func TestExecuteAdvancedHelp(t *testing.T) {
	config := testRunConfig(t, "")
	config.AdvHelp = true
	var out bytes.Buffer
	if err := Execute(config, &out); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Advanced help:") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if exists(config.QQName) || exists(config.ManName) {
		t.Fatal("advanced help should not plot")
	}
}

func TestNewRunConfig(t *testing.T) {
	var got *RunConfig
	app := &cli.App{
		Name: "qqman",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tsv"},
			&cli.BoolFlag{Name: "man"},
			&cli.StringFlag{Name: "highlight", Value: "sig"},
			&cli.StringFlag{Name: "col_p", Value: ColumnP},
		},
		Action: func(Cctx *cli.Context) error {
			got = NewRunConfig(Cctx)
			return nil
		},
	}
	if err := app.Run([]string{"qqman", "--tsv", "in.tsv", "--man", "--col_p", "PVAL"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.Tsv != "in.tsv" || !got.Man || got.QQ || got.Highlight != "sig" || got.ColP != "PVAL" {
		t.Fatalf("config = %+v", got)
	}
}
