// Package annotations applies highlight clicks to persisted boards.
package annotations

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/NikolaTosic-sudo/chess-marks/components/board"
	"github.com/NikolaTosic-sudo/chess-marks/internal/auth"
	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
	"github.com/NikolaTosic-sudo/chess-marks/internal/store"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrWrongPasscode = errors.New("wrong passcode")
)

type Store interface {
	CreateBoard(ctx context.Context, id uuid.UUID, passcodeHash string) error
	PasscodeHash(ctx context.Context, id uuid.UUID) (string, error)
	SaveHighlight(ctx context.Context, id uuid.UUID, tile string, c highlight.SelectedColor) error
	Highlights(ctx context.Context, id uuid.UUID) (map[string]highlight.SelectedColor, error)
	ClearHighlights(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	store Store

	mu     sync.Mutex
	boards map[uuid.UUID]*board.Board

	// writes keeps the cached board and the store in the same order.
	writes sync.Mutex
}

func New(s Store) *Service {
	return &Service{
		store:  s,
		boards: make(map[uuid.UUID]*board.Board),
	}
}

// Create stores a new board. An empty passcode leaves the board open to anyone.
func (s *Service) Create(ctx context.Context, passcode string) (uuid.UUID, error) {
	hash := ""
	if passcode != "" {
		var err error
		hash, err = auth.HashedPassword(passcode)
		if err != nil {
			return uuid.Nil, fmt.Errorf("hash passcode: %w", err)
		}
	}

	id := uuid.New()
	if err := s.store.CreateBoard(ctx, id, hash); err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	s.boards[id] = board.New()
	s.mu.Unlock()

	return id, nil
}

func (s *Service) Authorize(ctx context.Context, id uuid.UUID, passcode string) error {
	hash, err := s.store.PasscodeHash(ctx, id)
	if err != nil {
		return notFound(id, err)
	}

	if hash == "" {
		return nil
	}

	if err := auth.CheckPassword(passcode, hash); err != nil {
		return fmt.Errorf("board %v: %w", id, ErrWrongPasscode)
	}

	return nil
}

// Board returns the cached board, loading it from the store on first use.
// The store is read without holding the cache lock.
func (s *Service) Board(ctx context.Context, id uuid.UUID) (*board.Board, error) {
	s.mu.Lock()
	b, ok := s.boards[id]
	s.mu.Unlock()

	if ok {
		return b, nil
	}

	loaded, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.boards[id]; ok {
		return b, nil
	}
	s.boards[id] = loaded

	return loaded, nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*board.Board, error) {
	if _, err := s.store.PasscodeHash(ctx, id); err != nil {
		return nil, notFound(id, err)
	}

	highlights, err := s.store.Highlights(ctx, id)
	if err != nil {
		return nil, err
	}

	b := board.New()
	for tile, c := range highlights {
		if err := b.Set(tile, c); err != nil {
			return nil, fmt.Errorf("board %v: %w", id, err)
		}
	}

	return b, nil
}

func (s *Service) Click(ctx context.Context, id uuid.UUID, tile string, mods highlight.Modifiers) (board.Square, error) {
	b, err := s.Board(ctx, id)
	if err != nil {
		return board.Square{}, err
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	prev, _ := b.Square(tile)
	sq, err := b.Click(tile, mods)
	if err != nil {
		return board.Square{}, err
	}

	if err := s.store.SaveHighlight(ctx, id, tile, sq.SelectedColor); err != nil {
		_ = b.Set(tile, prev.SelectedColor)
		return board.Square{}, err
	}

	return sq, nil
}

// Clear removes all highlights and returns the squares that changed.
func (s *Service) Clear(ctx context.Context, id uuid.UUID) ([]board.Square, error) {
	b, err := s.Board(ctx, id)
	if err != nil {
		return nil, err
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	if err := s.store.ClearHighlights(ctx, id); err != nil {
		return nil, err
	}

	return b.Clear(), nil
}

func notFound(id uuid.UUID, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("board %v: %w", id, ErrBoardNotFound)
	}
	return err
}
