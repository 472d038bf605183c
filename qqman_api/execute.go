package qqman_api

import (
	"io"
	"log"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"
)

// Collect the settings of this run from the command line
func NewRunConfig(Cctx *cli.Context) *RunConfig {
	return &RunConfig{
		Csv:         Cctx.String("csv"),
		Tsv:         Cctx.String("tsv"),
		QQ:          Cctx.Bool("qq"),
		Man:         Cctx.Bool("man"),
		Highlight:   Cctx.String("highlight"),
		QQName:      Cctx.String("qq_name"),
		ManName:     Cctx.String("man_name"),
		ColChr:      Cctx.String("col_chr"),
		ColBp:       Cctx.String("col_bp"),
		ColP:        Cctx.String("col_p"),
		ColRsid:     Cctx.String("col_rsid"),
		Options:     Cctx.String("options"),
		OptionsFile: Cctx.String("options_file"),
		AdvHelp:     Cctx.Bool("adv_help"),
	}
}

// Read the input file and create the requested plots
func Execute(config *RunConfig, stdout io.Writer) error {
	logger := log.New(os.Stderr, "", 0)

	if config.AdvHelp {
		WriteAdvancedHelp(stdout)
		return nil
	}

	options, err := ReadOptions(config.OptionsFile, config.Options)
	if err != nil {
		return err
	}

	file, sep, err := config.input()
	if err != nil {
		return err
	}
	table, err := ReadTable(file, sep)
	if err != nil {
		return err
	}

	qq, man := config.QQ, config.Man
	if !qq && !man {
		qq, man = true, true
	}

	if err := table.Rename(config.ColP, ColumnP); err != nil {
		return err
	}

	if qq {
		pValues, err := table.PValues()
		if err != nil {
			return err
		}
		if _, err := QQPlot(pValues, options.QQ, config.QQName); err != nil {
			return err
		}
	}

	if !man {
		return nil
	}

	renames := [][2]string{
		{config.ColRsid, ColumnRsid},
		{config.ColChr, ColumnChr},
		{config.ColBp, ColumnBp},
	}
	for _, rename := range renames {
		if err := table.Rename(rename[0], rename[1]); err != nil {
			return err
		}
	}

	highlight, err := ResolveHighlights(config.Highlight, table, options.Man.SigP)
	if err != nil {
		return err
	}
	if len(highlight) > 0 {
		logger.Printf("Highlighting %d variants", len(highlight))
	}

	variants, err := table.Variants(len(highlight) > 0)
	if err != nil {
		return err
	}
	if _, err := ManhattanPlot(variants, highlight, options.Man, config.ManName); err != nil {
		return err
	}
	return nil
}

// The input file and its separator, exactly one of csv and tsv must be given
func (config *RunConfig) input() (string, rune, error) {
	csv, tsv := strings.TrimSpace(config.Csv), strings.TrimSpace(config.Tsv)
	if (csv == "") == (tsv == "") {
		return "", 0, cli.Exit("Please supply either a csv (--csv) or a tsv (--tsv) file, not both or neither", 1)
	}
	if csv != "" {
		return csv, ',', nil
	}
	return tsv, '\t', nil
}
