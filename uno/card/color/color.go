package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Base lists the four colors a player may declare, in table order.
var Base = []Color{Red, Yellow, Green, Blue}

type palette struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palettes = map[Color]palette{
	Wild:   {name: "wild", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if p, ok := palettes[c]; ok {
		return p.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) Valid() bool {
	_, ok := palettes[c]
	return ok
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := palettes[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(c.Name()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ByName(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var aliases = map[string]Color{
	"wild":   Wild,
	"w":      Wild,
	"red":    Red,
	"r":      Red,
	"yellow": Yellow,
	"y":      Yellow,
	"green":  Green,
	"g":      Green,
	"blue":   Blue,
	"b":      Blue,
}

// ByName resolves a color from its name or one-letter alias, case-insensitively.
func ByName(name string) (Color, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Wild, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
