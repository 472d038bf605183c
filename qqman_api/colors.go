package qqman_api

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// The palette used when the rainbow option is set
var rainbowPalette = []string{
	"#FF0000", "#FF4000", "#FF8000", "#FFBF00", "#FFFF00", "#BFFF00", "#80FF00", "#40FF00", "#00FF00",
	"#00FF40", "#00FF80", "#00FFBF", "#00FFFF", "#00BFFF", "#0080FF", "#0040FF", "#0000FF", "#4000FF",
	"#8000FF", "#BF00FF", "#FF00FF", "#FF00BF",
}

// Single letter color codes
var shortColors = map[string]string{
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// The rainbow point colors and the reversed rainbow highlight colors
func rainbowColors() ([]string, []string) {
	points := append([]string{}, rainbowPalette...)
	highlights := make([]string, len(rainbowPalette))
	for i, c := range rainbowPalette {
		highlights[len(rainbowPalette)-1-i] = c
	}
	return points, highlights
}

// Parse a color given by its SVG name, a single letter code or as #RGB, #RRGGBB or #RRGGBBAA
func ParseColor(name string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if long, ok := shortColors[key]; ok {
		key = long
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		return parseHexColor(name, key[1:])
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownColor, name)
}

// Parse a list of colors, the list must contain at least one color
func ParseColors(names []string) ([]color.Color, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty color list", ErrUnknownColor)
	}
	colors := make([]color.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

func parseHexColor(name string, hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownColor, name)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownColor, name)
	}
	// Alpha-premultiplied as required by color.RGBA
	a := uint32(value & 0xff)
	premultiply := func(v uint32) uint8 { return uint8(v * a / 0xff) }
	return color.RGBA{
		R: premultiply(uint32(value >> 24 & 0xff)),
		G: premultiply(uint32(value >> 16 & 0xff)),
		B: premultiply(uint32(value >> 8 & 0xff)),
		A: uint8(a),
	}, nil
}
