package qqman_api

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultOptionsAreFresh(t *testing.T) {
	first := DefaultOptions()
	first.Man.PointColor[0] = "red"
	first.QQ.Size = 5

	second := DefaultOptions()
	if second.Man.PointColor[0] != "midnightblue" || second.QQ.Size != 1 {
		t.Fatalf("defaults were modified through another copy: %+v", second)
	}
}

func TestApplyJsonOverrides(t *testing.T) {
	options, err := ReadOptions("", `{"qq":{"size":2},"man":{}}`)
	if err != nil {
		t.Fatalf("read options: %v", err)
	}
	defaults := DefaultOptions()

	width, height := options.QQ.FigureSize()
	defaultWidth, defaultHeight := defaults.QQ.FigureSize()
	if width != 2*defaultWidth || height != 2*defaultHeight {
		t.Fatalf("qq figure = %vx%v, want double of %vx%v", width, height, defaultWidth, defaultHeight)
	}
	if !reflect.DeepEqual(options.Man, defaults.Man) {
		t.Fatalf("man options changed: %+v", options.Man)
	}
}

func TestApplyAllManOptions(t *testing.T) {
	overrides, err := ParseOptionsJson(`{"man":{"sigp":1e-6,"sigcolor":"red","sugp":-1,"sugcolor":"blue",
		"pointcolor":["red","blue"],"size":1.5,"highlightcolor":"green","title":"GWAS","rainbow":true}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	options := DefaultOptions()
	if err := options.Apply(overrides); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := ManhattanOptions{
		SigP:           1e-6,
		SigColor:       "red",
		SugP:           -1,
		SugColor:       "blue",
		PointColor:     []string{"red", "blue"},
		Size:           1.5,
		HighlightColor: []string{"green"},
		Title:          "GWAS",
		Rainbow:        true,
	}
	if !reflect.DeepEqual(options.Man, want) {
		t.Fatalf("man = %+v, want %+v", options.Man, want)
	}
}

func TestApplyRejectsBadOverrides(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown key", `{"qq":{"colour":"red"}}`, ErrUnknownOption},
		{"unknown section", `{"scatter":{}}`, ErrUnknownOption},
		{"string size", `{"qq":{"size":"2"}}`, ErrOptionType},
		{"numeric color", `{"qq":{"pointcolor":3}}`, ErrOptionType},
		{"string rainbow", `{"man":{"rainbow":"yes"}}`, ErrOptionType},
		{"empty color list", `{"man":{"pointcolor":[]}}`, ErrOptionType},
		{"mixed color list", `{"man":{"pointcolor":["red",1]}}`, ErrOptionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides, err := ParseOptionsJson(tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := DefaultOptions().Apply(overrides); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNullTitle(t *testing.T) {
	options := DefaultOptions()
	options.QQ.Title = "old"
	overrides, err := ParseOptionsJson(`{"qq":{"title":null}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := options.Apply(overrides); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if options.QQ.Title != "" {
		t.Fatalf("title = %q, want empty", options.QQ.Title)
	}
}

func TestMalformedJson(t *testing.T) {
	if _, err := ReadOptions("", `{"qq":`); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestYamlOptionsFile(t *testing.T) {
	yamlFile := writeFile(t, "options.yaml", `qq:
  size: 3
  title: From file
man:
  sigp: 0.000001
  pointcolor:
    - red
    - blue
  rainbow: true
`)
	options, err := ReadOptions(yamlFile, `{"qq":{"title":"From flag"}}`)
	if err != nil {
		t.Fatalf("read options: %v", err)
	}
	if options.QQ.Size != 3 {
		t.Errorf("qq size = %v, want 3", options.QQ.Size)
	}
	if options.QQ.Title != "From flag" {
		t.Errorf("qq title = %q, the JSON overrides should win", options.QQ.Title)
	}
	if options.Man.SigP != 1e-6 || !options.Man.Rainbow {
		t.Errorf("man = %+v", options.Man)
	}
	if !reflect.DeepEqual(options.Man.PointColor, []string{"red", "blue"}) {
		t.Errorf("man pointcolor = %v", options.Man.PointColor)
	}
}

func TestAdvancedHelp(t *testing.T) {
	var buf bytes.Buffer
	WriteAdvancedHelp(&buf)
	out := buf.String()

	for _, want := range []string{
		"Advanced help:",
		"qq:",
		"man:",
		"  sigp:",
		"(default: 5e-08)",
		"(default: [midnightblue goldenrod])",
		"(default: null)",
		"Example usage:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("advanced help misses %q:\n%s", want, out)
		}
	}
	for _, doc := range append(append([]optionDoc{}, qqOptionDocs...), manOptionDocs...) {
		if !strings.Contains(out, "  "+doc.Key+":\n") {
			t.Errorf("advanced help misses option %s", doc.Key)
		}
	}
}
