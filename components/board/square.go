package board

import (
	"fmt"

	"github.com/NikolaTosic-sudo/chess-marks/internal/coords"
	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

type Square struct {
	FileIndex     int                     `json:"fileIndex"`
	RankIndex     int                     `json:"rankIndex"`
	FileDisplay   string                  `json:"fileDisplay"`
	RankDisplay   string                  `json:"rankDisplay"`
	SelectedColor highlight.SelectedColor `json:"selectedColor"`
}

func NewSquare(file, rank int) (Square, error) {
	fileDisplay, err := coords.FileIndexToDisplay(file)
	if err != nil {
		return Square{}, err
	}

	if !coords.ValidIndex(rank) {
		return Square{}, fmt.Errorf("rank %d: %w", rank, coords.ErrInvalidIndex)
	}

	return Square{
		FileIndex:   file,
		RankIndex:   rank,
		FileDisplay: fileDisplay,
		RankDisplay: coords.RankIndexToDisplay(rank),
	}, nil
}

func (s Square) Tile() string {
	tile, _ := coords.Tile(s.FileIndex, s.RankIndex)
	return tile
}

func (s Square) Style(p highlight.Palette) string {
	return p.Style(s.FileIndex, s.RankIndex, s.SelectedColor)
}
