package qqman_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v2"
)

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrOptionType    = errors.New("wrong option type")
)

// The sections of the option overrides
const (
	SectionQQ  = "qq"
	SectionMan = "man"
)

// Overrides per section, as decoded from JSON or YAML
type Overrides map[string]map[string]interface{}

// The description of a single option
type optionDoc struct {
	Key         string
	Description string
}

var qqOptionDocs = []optionDoc{
	{"size", "Relative figure size."},
	{"title", "Main in-figure title."},
	{"pointcolor", "Color of plotted points."},
	{"linecolor", "Color of plotted lines."},
}

var manOptionDocs = []optionDoc{
	{"sigp", "P-value cutoff for significance. (set to negative value to remove)"},
	{"sigcolor", "Color of significance cutoff line."},
	{"sugp", "P-value cutoff for suggested. (set to negative value to remove)"},
	{"sugcolor", "Color of suggested line."},
	{"pointcolor", "List of colors (length >=1) to use for points, will loop over list per chromosome."},
	{"size", "Relative figure size."},
	{"highlightcolor", "List of colors (length >=1) to use for highlighting, will loop over list per chromosome."},
	{"title", "Main figure title."},
	{"rainbow", "Override existing colors and use rainbow instead."},
}

// Create the default options. Every call returns a fresh copy.
func DefaultOptions() *Options {
	return &Options{
		QQ: QQOptions{
			Size:       1,
			PointColor: "black",
			LineColor:  "red",
		},
		Man: ManhattanOptions{
			SigP:           5e-8,
			SigColor:       "black",
			SugP:           1e-5,
			SugColor:       "black",
			PointColor:     []string{"midnightblue", "goldenrod"},
			Size:           1,
			HighlightColor: []string{"orange"},
		},
	}
}

// Resolve the options of a run: defaults, then the YAML file, then the JSON string
func ReadOptions(optionsFile string, optionsJson string) (*Options, error) {
	options := DefaultOptions()

	if optionsFile != "" {
		data, err := os.ReadFile(optionsFile)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("failed to open the options file: %w", err))
		}
		overrides, err := ParseOptionsYaml(data)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("failed to parse the options file: %w", err))
		}
		if err := options.Apply(overrides); err != nil {
			return nil, pfx.Err(err)
		}
	}

	if optionsJson != "" {
		overrides, err := ParseOptionsJson(optionsJson)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("failed to parse --options: %w", err))
		}
		if err := options.Apply(overrides); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return options, nil
}

// Decode JSON encoded overrides like {"qq":{"size":2},"man":{}}
func ParseOptionsJson(input string) (Overrides, error) {
	var overrides Overrides
	if err := json.Unmarshal([]byte(input), &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

// Decode YAML encoded overrides with the same layout as the JSON ones
func ParseOptionsYaml(input []byte) (Overrides, error) {
	var overrides Overrides
	if err := yaml.Unmarshal(input, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

// Apply the overrides onto the options
func (options *Options) Apply(overrides Overrides) error {
	for section, values := range overrides {
		if section != SectionQQ && section != SectionMan {
			return fmt.Errorf("%w: section '%s', must be one of: %s, %s", ErrUnknownOption, section, SectionQQ, SectionMan)
		}
		for key, value := range values {
			var err error
			if section == SectionQQ {
				err = options.QQ.set(key, value)
			} else {
				err = options.Man.set(key, value)
			}
			if err != nil {
				return fmt.Errorf("option %s.%s: %w", section, key, err)
			}
		}
	}
	return nil
}

func (options *QQOptions) set(key string, value interface{}) error {
	var err error
	switch strings.ToLower(key) {
	case "size":
		options.Size, err = toFloat(value)
	case "title":
		options.Title, err = toTitle(value)
	case "pointcolor":
		options.PointColor, err = toString(value)
	case "linecolor":
		options.LineColor, err = toString(value)
	default:
		err = ErrUnknownOption
	}
	return err
}

func (options *ManhattanOptions) set(key string, value interface{}) error {
	var err error
	switch strings.ToLower(key) {
	case "sigp":
		options.SigP, err = toFloat(value)
	case "sigcolor":
		options.SigColor, err = toString(value)
	case "sugp":
		options.SugP, err = toFloat(value)
	case "sugcolor":
		options.SugColor, err = toString(value)
	case "pointcolor":
		options.PointColor, err = toStringList(value)
	case "size":
		options.Size, err = toFloat(value)
	case "highlightcolor":
		options.HighlightColor, err = toStringList(value)
	case "title":
		options.Title, err = toTitle(value)
	case "rainbow":
		options.Rainbow, err = toBool(value)
	default:
		err = ErrUnknownOption
	}
	return err
}

func (options QQOptions) get(key string) interface{} {
	switch key {
	case "size":
		return options.Size
	case "title":
		return showTitle(options.Title)
	case "pointcolor":
		return options.PointColor
	case "linecolor":
		return options.LineColor
	}
	return nil
}

func (options ManhattanOptions) get(key string) interface{} {
	switch key {
	case "sigp":
		return options.SigP
	case "sigcolor":
		return options.SigColor
	case "sugp":
		return options.SugP
	case "sugcolor":
		return options.SugColor
	case "pointcolor":
		return options.PointColor
	case "size":
		return options.Size
	case "highlightcolor":
		return options.HighlightColor
	case "title":
		return showTitle(options.Title)
	case "rainbow":
		return options.Rainbow
	}
	return nil
}

func showTitle(title string) string {
	if title == "" {
		return "null"
	}
	return title
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: expected a number, got %v (%T)", ErrOptionType, value, value)
}

func toString(value interface{}) (string, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: expected a string, got %v (%T)", ErrOptionType, value, value)
}

// A title can be cleared with null
func toTitle(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}
	return toString(value)
}

func toBool(value interface{}) (bool, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return false, fmt.Errorf("%w: expected true or false, got %v (%T)", ErrOptionType, value, value)
}

// A single string counts as a list with one color
func toStringList(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: expected at least one color", ErrOptionType)
		}
		list := make([]string, len(v))
		for i, item := range v {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			list[i] = s
		}
		return list, nil
	}
	return nil, fmt.Errorf("%w: expected a list of strings, got %v (%T)", ErrOptionType, value, value)
}

// Write the documentation of all options with their defaults
func WriteAdvancedHelp(w io.Writer) {
	defaults := DefaultOptions()

	fmt.Fprintln(w, "Advanced help:")
	fmt.Fprintln(w, SectionQQ+":")
	for _, doc := range qqOptionDocs {
		fmt.Fprintf(w, "  %s:\n        %s (default: %v)\n", doc.Key, doc.Description, defaults.QQ.get(doc.Key))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, SectionMan+":")
	for _, doc := range manOptionDocs {
		fmt.Fprintf(w, "  %s:\n        %s (default: %v)\n", doc.Key, doc.Description, defaults.Man.get(doc.Key))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example usage:")
	fmt.Fprintln(w, `1: --options '{"qq":{"size": 2, "title":"My QQ-plot title"}, "man": {"title":"My Rainbowplot", "rainbow": true}}'`)
	fmt.Fprintln(w, `2: --options '{"man": {"title":"My red&blue plot", "pointcolor": ["red", "blue"]}}'`)
	fmt.Fprintln(w, "The same layout can be written as YAML and passed with --options_file. Options given with --options take precedence.")
}
