// SPDX-License-Identifier: AGPL-3.0-only

package convert

// builtinColors are the named colors of the Grafana classic palette.
var builtinColors = map[string]string{
	"super-light-red":    "#FFA6B0",
	"light-red":          "#FF7383",
	"red":                "#F2495C",
	"semi-dark-red":      "#E02F44",
	"dark-red":           "#C4162A",
	"super-light-orange": "#FFCB7D",
	"light-orange":       "#FFB357",
	"orange":             "#FF9830",
	"semi-dark-orange":   "#FF780A",
	"dark-orange":        "#FA6400",
	"super-light-yellow": "#FFF899",
	"light-yellow":       "#FFEE52",
	"yellow":             "#FADE2A",
	"semi-dark-yellow":   "#F2CC0C",
	"dark-yellow":        "#E0B400",
	"super-light-green":  "#C8F2C2",
	"light-green":        "#96D98D",
	"green":              "#73BF69",
	"semi-dark-green":    "#56A64B",
	"dark-green":         "#37872D",
	"super-light-blue":   "#C0D8FF",
	"light-blue":         "#8AB8FF",
	"blue":               "#5794F2",
	"semi-dark-blue":     "#3274D9",
	"dark-blue":          "#1F60C4",
	"super-light-purple": "#DEB6F2",
	"light-purple":       "#CA95E5",
	"purple":             "#B877D9",
	"semi-dark-purple":   "#A352CC",
	"dark-purple":        "#8F3BB8",
}

// ResolveColor returns the hex value of a named palette color.
// Anything else is assumed to be a color value already and is returned as is.
func ResolveColor(color string) string {
	if hex, ok := builtinColors[color]; ok {
		return hex
	}
	return color
}
