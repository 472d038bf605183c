package qqman_api

// The struct representing a delimited summary statistics file in memory
type Table struct {
	// The column names of the table, lowercased
	Header []string

	// The rows of the table, each with exactly len(Header) fields
	Rows [][]string
}

// A struct representing one variant of the summary statistics
type Variant struct {
	// The chromosome of the variant
	Chromosome Chromosome

	// The base-pair position of the variant
	Pos int64

	// The p-value of the variant
	P float64

	// The identifier (rsid) of the variant, empty when not loaded
	Id string
}

//
// Option structs
//

// The options of the QQ plot
type QQOptions struct {
	// Relative figure size, the figure is 8*Size inches square
	Size float64

	// Color of the plotted points
	PointColor string

	// Color of the y=x reference line
	LineColor string

	// Main in-figure title, empty for none
	Title string
}

// The options of the Manhattan plot
type ManhattanOptions struct {
	// P-value cutoff for significance, a non-positive value removes the line
	SigP float64

	// Color of the significance line
	SigColor string

	// P-value cutoff for suggestive significance, a non-positive value removes the line
	SugP float64

	// Color of the suggestive line
	SugColor string

	// Colors to loop over per chromosome
	PointColor []string

	// Relative figure size, the figure is 12*Size by 6*Size inches
	Size float64

	// Colors to loop over per chromosome for highlighted variants
	HighlightColor []string

	// Main figure title, empty for none
	Title string

	// Override PointColor and HighlightColor with the rainbow palette
	Rainbow bool
}

// The options of both plots
type Options struct {
	QQ  QQOptions
	Man ManhattanOptions
}

// The settings of one invocation of the command line tool
type RunConfig struct {
	// Comma separated input file
	Csv string

	// Tab separated input file
	Tsv string

	// Plot the QQ plot
	QQ bool

	// Plot the Manhattan plot
	Man bool

	// Highlight mode: sig, none, a file or a comma separated list
	Highlight string

	// Output file of the QQ plot
	QQName string

	// Output file of the Manhattan plot
	ManName string

	// Source column names
	ColChr  string
	ColBp   string
	ColP    string
	ColRsid string

	// JSON encoded option overrides
	Options string

	// YAML file with option overrides
	OptionsFile string

	// Print the advanced help and stop
	AdvHelp bool
}
