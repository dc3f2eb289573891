// Package coords converts between zero-based board indices and the file
// and rank labels shown around a chessboard.
package coords

import (
	"errors"
	"fmt"
	"strconv"
)

// NotFound is returned by DisplayToFileIndex for an unknown letter.
const NotFound = -1

const Size = 8

var (
	ErrInvalidIndex  = errors.New("index out of range")
	ErrLabelNotFound = errors.New("label not found")
	ErrNotANumber    = errors.New("label is not a number")
)

var fileLetters = [Size]string{"a", "b", "c", "d", "e", "f", "g", "h"}
var rankNumbers = [Size]string{"1", "2", "3", "4", "5", "6", "7", "8"}

// Files returns a copy of the file labels, a through h.
func Files() [Size]string {
	return fileLetters
}

// Ranks returns a copy of the rank labels, 1 through 8.
func Ranks() [Size]string {
	return rankNumbers
}

func ValidIndex(index int) bool {
	return index >= 0 && index < Size
}

func FileIndexToDisplay(index int) (string, error) {
	if !ValidIndex(index) {
		return "", fmt.Errorf("file %d: %w", index, ErrInvalidIndex)
	}

	return fileLetters[index], nil
}

func DisplayToFileIndex(letter string) int {
	for i, fileLetter := range fileLetters {
		if fileLetter == letter {
			return i
		}
	}

	return NotFound
}

// RankIndexToDisplay is plain arithmetic and accepts any integer.
func RankIndexToDisplay(index int) string {
	return strconv.Itoa(index + 1)
}

func DisplayToRankIndex(label string) (int, error) {
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, fmt.Errorf("rank %q: %w: %v", label, ErrNotANumber, err)
	}

	return n - 1, nil
}

// Tile returns the algebraic name of a square, e.g. "e4".
func Tile(file, rank int) (string, error) {
	letter, err := FileIndexToDisplay(file)
	if err != nil {
		return "", err
	}

	if !ValidIndex(rank) {
		return "", fmt.Errorf("rank %d: %w", rank, ErrInvalidIndex)
	}

	return letter + RankIndexToDisplay(rank), nil
}

// ParseTile accepts only canonical names: one file letter and one rank
// digit, so "a01" and "a+1" are rejected.
func ParseTile(tile string) (file, rank int, err error) {
	if len(tile) != 2 {
		return 0, 0, fmt.Errorf("tile %q: %w", tile, ErrLabelNotFound)
	}

	file = DisplayToFileIndex(tile[:1])
	if file == NotFound {
		return 0, 0, fmt.Errorf("tile %q: file %q: %w", tile, tile[:1], ErrLabelNotFound)
	}

	rank = rankLabelIndex(tile[1:])
	if rank == NotFound {
		if _, err := DisplayToRankIndex(tile[1:]); err != nil {
			return 0, 0, fmt.Errorf("tile %q: %w", tile, err)
		}
		return 0, 0, fmt.Errorf("tile %q: rank %q: %w", tile, tile[1:], ErrInvalidIndex)
	}

	return file, rank, nil
}

func rankLabelIndex(label string) int {
	for i, rankNumber := range rankNumbers {
		if rankNumber == label {
			return i
		}
	}

	return NotFound
}
