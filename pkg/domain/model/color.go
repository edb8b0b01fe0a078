package model

import (
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ColorToken is the accent color of an attachment. Only the values declared
// below exist; an alias that does not resolve never reaches the wire.
type ColorToken int

const (
	ColorGrey ColorToken = iota
	ColorGood
	ColorWarning
	ColorDanger
	ColorPurple
	ColorBlue
)

// DefaultColor is used when no color is requested or the alias is unknown.
const DefaultColor = ColorGrey

var colorValues = map[ColorToken]string{
	ColorGrey:    "#d3d3d3",
	ColorGood:    "good",
	ColorWarning: "warning",
	ColorDanger:  "danger",
	ColorPurple:  "#764FA5",
	ColorBlue:    "#439FE0",
}

var colorAliases = map[string]ColorToken{
	"default": ColorGrey,
	"info":    ColorGrey,
	"good":    ColorGood,
	"green":   ColorGood,
	"warn":    ColorWarning,
	"orange":  ColorWarning,
	"danger":  ColorDanger,
	"red":     ColorDanger,
	"purple":  ColorPurple,
	"blue":    ColorBlue,
}

// String returns the value Slack expects in the attachment "color" field.
func (c ColorToken) String() string {
	if v, ok := colorValues[c]; ok {
		return v
	}
	return colorValues[DefaultColor]
}

// LookupColor resolves a human alias such as "red" or "Warn". Matching is
// case-insensitive and ignores surrounding whitespace.
func LookupColor(alias string) (ColorToken, bool) {
	c, ok := colorAliases[strings.ToLower(strings.TrimSpace(alias))]
	return c, ok
}

// ColorAliases returns every accepted alias in sorted order.
func ColorAliases() []string {
	aliases := make([]string, 0, len(colorAliases))
	for alias := range colorAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

func (c ColorToken) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts either a wire value ("good", "#439FE0") or an alias.
func (c *ColorToken) UnmarshalText(text []byte) error {
	s := string(text)
	for token, v := range colorValues {
		if strings.EqualFold(v, s) {
			*c = token
			return nil
		}
	}

	if token, ok := LookupColor(s); ok {
		*c = token
		return nil
	}

	return goerr.New("unknown color", goerr.V("color", s))
}
