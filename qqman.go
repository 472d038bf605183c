package main

import (
	"log"
	"os"

	"github.com/nvnieuwk/qqman/qqman_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:            "qqman",
		Usage:           "QQ and Manhattan plotter. Plots both by default. All column names are case insensitive.",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "csv",
				Usage:    "Comma separated file with summary statistics (supports gzipped files if the extension is .gz)",
				Category: "Input",
			},
			&cli.StringFlag{
				Name:     "tsv",
				Usage:    "Tab separated file with summary statistics (supports gzipped files if the extension is .gz)",
				Category: "Input",
			},
			&cli.BoolFlag{
				Name:     "man",
				Usage:    "Only plot the Manhattan plot",
				Category: "Plots",
			},
			&cli.BoolFlag{
				Name:     "qq",
				Usage:    "Only plot the QQ plot",
				Category: "Plots",
			},
			&cli.StringFlag{
				Name:     "highlight",
				Usage:    "SNPs to highlight. Either comma separated RSIDs, a file with 1 SNP per line, 'sig' for significant SNPs or 'none'",
				Value:    "sig",
				Category: "Plots",
			},
			&cli.StringFlag{
				Name:     "qq_name",
				Usage:    "Filename for the QQ plot",
				Value:    "qqplot.png",
				Category: "Plots",
			},
			&cli.StringFlag{
				Name:     "man_name",
				Usage:    "Filename for the Manhattan plot",
				Value:    "manhattan.png",
				Category: "Plots",
			},
			&cli.StringFlag{
				Name:     "col_chr",
				Usage:    "Column name of the chromosome",
				Value:    qqman_api.ColumnChr,
				Category: "Columns",
			},
			&cli.StringFlag{
				Name:     "col_bp",
				Usage:    "Column name of the base-pair position",
				Value:    qqman_api.ColumnBp,
				Category: "Columns",
			},
			&cli.StringFlag{
				Name:     "col_p",
				Usage:    "Column name of the p-value",
				Value:    qqman_api.ColumnP,
				Category: "Columns",
			},
			&cli.StringFlag{
				Name:     "col_rsid",
				Usage:    "Column name of the RSID",
				Value:    qqman_api.ColumnRsid,
				Category: "Columns",
			},
			&cli.StringFlag{
				Name:     "options",
				Usage:    "JSON formatted other options (use --adv_help to see options)",
				Category: "Options",
			},
			&cli.StringFlag{
				Name:     "options_file",
				Usage:    "YAML file with other options, --options takes precedence",
				Category: "Options",
			},
			&cli.BoolFlag{
				Name:     "adv_help",
				Usage:    "See advanced options",
				Category: "Options",
			},
		},
		Action: func(Cctx *cli.Context) error {
			config := qqman_api.NewRunConfig(Cctx)
			return qqman_api.Execute(config, os.Stdout)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}
