// Package board keeps the highlight state of the 64 squares of one board.
package board

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/NikolaTosic-sudo/chess-marks/internal/coords"
	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

var ErrUnknownTile = errors.New("unknown tile")

type Board struct {
	mu      sync.RWMutex
	squares map[string]Square
}

func New() *Board {
	b := &Board{squares: make(map[string]Square, coords.Size*coords.Size)}

	for file := 0; file < coords.Size; file++ {
		for rank := 0; rank < coords.Size; rank++ {
			sq, _ := NewSquare(file, rank)
			b.squares[sq.Tile()] = sq
		}
	}

	return b
}

func (b *Board) Square(tile string) (Square, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sq, ok := b.squares[tile]
	return sq, ok
}

// Squares returns the board in reading order: rank 8 first, files a to h.
func (b *Board) Squares() []Square {
	b.mu.RLock()
	defer b.mu.RUnlock()

	squares := make([]Square, 0, len(b.squares))

	for rank := coords.Size - 1; rank >= 0; rank-- {
		for file := 0; file < coords.Size; file++ {
			tile, _ := coords.Tile(file, rank)
			squares = append(squares, b.squares[tile])
		}
	}

	return squares
}

// Click applies highlight.NextColor to the tile and returns the updated square.
func (b *Board) Click(tile string, mods highlight.Modifiers) (Square, error) {
	if err := checkTile(tile); err != nil {
		return Square{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sq, ok := b.squares[tile]
	if !ok {
		return Square{}, fmt.Errorf("%q: %w", tile, ErrUnknownTile)
	}

	sq.SelectedColor = highlight.NextColor(mods, sq.SelectedColor)
	b.squares[tile] = sq

	return sq, nil
}

func (b *Board) Set(tile string, c highlight.SelectedColor) error {
	if !c.Valid() {
		return fmt.Errorf("%q: %w", c, highlight.ErrUnknownColor)
	}

	if err := checkTile(tile); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sq, ok := b.squares[tile]
	if !ok {
		return fmt.Errorf("%q: %w", tile, ErrUnknownTile)
	}

	sq.SelectedColor = c
	b.squares[tile] = sq

	return nil
}

// Clear removes every highlight and returns the squares it changed.
func (b *Board) Clear() []Square {
	b.mu.Lock()
	defer b.mu.Unlock()

	cleared := []Square{}
	for tile, sq := range b.squares {
		if sq.SelectedColor == highlight.None {
			continue
		}

		sq.SelectedColor = highlight.None
		b.squares[tile] = sq
		cleared = append(cleared, sq)
	}

	sortSquares(cleared)

	return cleared
}

func (b *Board) Highlighted() []Square {
	highlighted := []Square{}
	for _, sq := range b.Squares() {
		if sq.SelectedColor != highlight.None {
			highlighted = append(highlighted, sq)
		}
	}

	return highlighted
}

func checkTile(tile string) error {
	if _, _, err := coords.ParseTile(tile); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownTile, err)
	}
	return nil
}

func sortSquares(squares []Square) {
	slices.SortFunc(squares, func(a, b Square) int {
		if a.RankIndex != b.RankIndex {
			return b.RankIndex - a.RankIndex
		}
		return a.FileIndex - b.FileIndex
	})
}
