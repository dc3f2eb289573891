package highlight

import (
	"errors"
	"testing"
)

func TestNextColor(t *testing.T) {
	tests := []struct {
		name       string
		mods       Modifiers
		current    SelectedColor
		wantResult SelectedColor
	}{
		{
			name:       "Shift on an empty square",
			mods:       Modifiers{Shift: true},
			current:    None,
			wantResult: Green,
		},
		{
			name:       "Shift on a green square clears it",
			mods:       Modifiers{Shift: true},
			current:    Green,
			wantResult: None,
		},
		{
			name:       "Shift on a red square",
			mods:       Modifiers{Shift: true},
			current:    Red,
			wantResult: Green,
		},
		{
			name:       "Ctrl on an empty square",
			mods:       Modifiers{Ctrl: true},
			current:    None,
			wantResult: Yellow,
		},
		{
			name:       "Ctrl on a yellow square clears it",
			mods:       Modifiers{Ctrl: true},
			current:    Yellow,
			wantResult: None,
		},
		{
			name:       "Alt on an empty square",
			mods:       Modifiers{Alt: true},
			current:    None,
			wantResult: Blue,
		},
		{
			name:       "Alt on a blue square clears it",
			mods:       Modifiers{Alt: true},
			current:    Blue,
			wantResult: None,
		},
		{
			name:       "Plain click on an empty square",
			mods:       Modifiers{},
			current:    None,
			wantResult: Red,
		},
		{
			name:       "Plain click on a red square clears it",
			mods:       Modifiers{},
			current:    Red,
			wantResult: None,
		},
		{
			name:       "Plain click on a blue square",
			mods:       Modifiers{},
			current:    Blue,
			wantResult: Red,
		},
		{
			name:       "Shift wins over ctrl",
			mods:       Modifiers{Shift: true, Ctrl: true},
			current:    None,
			wantResult: Green,
		},
		{
			name:       "Shift and ctrl on a green square falls through to ctrl",
			mods:       Modifiers{Shift: true, Ctrl: true},
			current:    Green,
			wantResult: Yellow,
		},
		{
			name:       "Shift and alt on a green square falls through to alt",
			mods:       Modifiers{Shift: true, Alt: true},
			current:    Green,
			wantResult: Blue,
		},
		{
			name:       "Ctrl and alt on a yellow square falls through to alt",
			mods:       Modifiers{Ctrl: true, Alt: true},
			current:    Yellow,
			wantResult: Blue,
		},
		{
			name:       "Shift and alt on a red square",
			mods:       Modifiers{Shift: true, Alt: true},
			current:    Red,
			wantResult: Green,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := NextColor(tt.mods, tt.current)

			if next != tt.wantResult {
				t.Errorf("NextColor() next = %v, want %v", next, tt.wantResult)
			}
		})
	}
}

func TestNextColorToggles(t *testing.T) {
	mods := []Modifiers{{}, {Shift: true}, {Ctrl: true}, {Alt: true}}

	for _, m := range mods {
		first := NextColor(m, None)
		if second := NextColor(m, first); second != None {
			t.Errorf("clicking twice with %+v left %v", m, second)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantResult SelectedColor
		wantErr    bool
	}{
		{name: "Red", input: "red", wantResult: Red},
		{name: "Blue", input: "blue", wantResult: Blue},
		{name: "None by name", input: "none", wantResult: None},
		{name: "None as empty", input: "", wantResult: None},
		{name: "Unknown", input: "purple", wantErr: true},
		{name: "Wrong case", input: "Red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseColor() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrUnknownColor) {
				t.Errorf("ParseColor() error = %v, want %v", err, ErrUnknownColor)
			}

			if c != tt.wantResult {
				t.Errorf("ParseColor() c = %v, want %v", c, tt.wantResult)
			}
		})
	}
}

func TestColorText(t *testing.T) {
	text, _ := None.MarshalText()
	if string(text) != "none" {
		t.Errorf("None.MarshalText() = %s, want none", text)
	}

	var c SelectedColor
	if err := c.UnmarshalText([]byte("yellow")); err != nil || c != Yellow {
		t.Errorf("UnmarshalText(yellow) = %v, %v", c, err)
	}
}

func TestPaletteStyle(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		name       string
		file       int
		rank       int
		color      SelectedColor
		wantResult string
	}{
		{name: "a1 is dark", file: 0, rank: 0, color: None, wantResult: "background-color: #b58863"},
		{name: "b1 is light", file: 1, rank: 0, color: None, wantResult: "background-color: #f0d9b5"},
		{name: "h8 is dark", file: 7, rank: 7, color: None, wantResult: "background-color: #b58863"},
		{name: "Highlight covers the base", file: 1, rank: 0, color: Green, wantResult: "background-color: #98c379"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := p.Style(tt.file, tt.rank, tt.color)

			if style != tt.wantResult {
				t.Errorf("Style() style = %v, want %v", style, tt.wantResult)
			}
		})
	}
}

func TestPaletteWithDefaults(t *testing.T) {
	p := Palette{Red: "#ff0000"}.WithDefaults()

	if p.Red != "#ff0000" {
		t.Errorf("WithDefaults() overwrote red: %v", p.Red)
	}

	if p.Blue != DefaultPalette().Blue {
		t.Errorf("WithDefaults() blue = %v, want %v", p.Blue, DefaultPalette().Blue)
	}
}
