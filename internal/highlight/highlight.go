// Package highlight decides which annotation color a square takes when it
// is clicked, and maps those colors to CSS.
package highlight

import (
	"errors"
	"fmt"
)

type SelectedColor string

const (
	None   SelectedColor = ""
	Red    SelectedColor = "red"
	Green  SelectedColor = "green"
	Yellow SelectedColor = "yellow"
	Blue   SelectedColor = "blue"
)

var ErrUnknownColor = errors.New("unknown highlight color")

// Modifiers are the keys held while a square was clicked.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

func (m Modifiers) Any() bool {
	return m.Shift || m.Ctrl || m.Alt
}

// NextColor toggles the color bound to the held modifier: shift is green,
// ctrl yellow, alt blue and a plain click red. Clicking a square that already
// has that color clears it.
func NextColor(mods Modifiers, current SelectedColor) SelectedColor {
	if mods.Shift && current != Green {
		return Green
	} else if mods.Ctrl && current != Yellow {
		return Yellow
	} else if mods.Alt && current != Blue {
		return Blue
	} else if !mods.Any() && current != Red {
		return Red
	}

	return None
}

func (c SelectedColor) String() string {
	if c == None {
		return "none"
	}
	return string(c)
}

func (c SelectedColor) Valid() bool {
	switch c {
	case None, Red, Green, Yellow, Blue:
		return true
	}
	return false
}

func ParseColor(s string) (SelectedColor, error) {
	if s == "none" {
		return None, nil
	}

	c := SelectedColor(s)
	if !c.Valid() {
		return None, fmt.Errorf("%q: %w", s, ErrUnknownColor)
	}

	return c, nil
}

func (c SelectedColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *SelectedColor) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
