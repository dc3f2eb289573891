package highlight

import "fmt"

// Palette holds the CSS colors used to paint squares.
type Palette struct {
	Light  string `yaml:"light"`
	Dark   string `yaml:"dark"`
	Red    string `yaml:"red"`
	Green  string `yaml:"green"`
	Yellow string `yaml:"yellow"`
	Blue   string `yaml:"blue"`
}

func DefaultPalette() Palette {
	return Palette{
		Light:  "#f0d9b5",
		Dark:   "#b58863",
		Red:    "#e06c75",
		Green:  "#98c379",
		Yellow: "#e5c07b",
		Blue:   "#61afef",
	}
}

// WithDefaults fills empty entries from DefaultPalette.
func (p Palette) WithDefaults() Palette {
	d := DefaultPalette()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&p.Light, d.Light)
	fill(&p.Dark, d.Dark)
	fill(&p.Red, d.Red)
	fill(&p.Green, d.Green)
	fill(&p.Yellow, d.Yellow)
	fill(&p.Blue, d.Blue)

	return p
}

// Color returns the CSS color of a highlight, or "" for None.
func (p Palette) Color(c SelectedColor) string {
	switch c {
	case Red:
		return p.Red
	case Green:
		return p.Green
	case Yellow:
		return p.Yellow
	case Blue:
		return p.Blue
	}
	return ""
}

// Base is the unhighlighted color of a square; a1 is dark.
func (p Palette) Base(file, rank int) string {
	if (file+rank)%2 == 0 {
		return p.Dark
	}
	return p.Light
}

func (p Palette) Style(file, rank int, c SelectedColor) string {
	color := p.Color(c)
	if color == "" {
		color = p.Base(file, rank)
	}

	return fmt.Sprintf("background-color: %v", color)
}
