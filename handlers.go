package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/NikolaTosic-sudo/chess-marks/components/board"
	"github.com/NikolaTosic-sudo/chess-marks/internal/annotations"
	"github.com/NikolaTosic-sudo/chess-marks/internal/auth"
	"github.com/NikolaTosic-sudo/chess-marks/internal/coords"
	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
	"github.com/NikolaTosic-sudo/chess-marks/internal/responses"
	"github.com/NikolaTosic-sudo/chess-marks/internal/utils"
)

type labelsResponse struct {
	Files [coords.Size]string `json:"files"`
	Ranks [coords.Size]string `json:"ranks"`
}

type boardResponse struct {
	ID      uuid.UUID      `json:"id"`
	Squares []board.Square `json:"squares"`
}

type tokenResponse struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

func (cfg *appConfig) labelsHandler(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, labelsResponse{
		Files: coords.Files(),
		Ranks: coords.Ranks(),
	})
}

func (cfg *appConfig) createBoardHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "couldn't decode request", err)
		return
	}

	boardId, err := cfg.annotations.Create(r.Context(), r.FormValue("passcode"))
	if err != nil {
		responses.RespondWithAnError(w, http.StatusInternalServerError, "couldn't create board", err)
		return
	}

	cfg.respondWithToken(w, boardId, http.StatusCreated)
}

func (cfg *appConfig) tokenHandler(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseBoardId(r)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "invalid board id", err)
		return
	}

	if err := r.ParseForm(); err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "couldn't decode request", err)
		return
	}

	err = cfg.annotations.Authorize(r.Context(), boardId, r.FormValue("passcode"))
	if errors.Is(err, annotations.ErrWrongPasscode) && responses.IsHTMX(r) {
		responses.LogError("wrong passcode", err)
		fmt.Fprintf(w, responses.GetPasscodeErrorMessage(), "Wrong passcode")
		return
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	cfg.respondWithToken(w, boardId, http.StatusOK)
}

func (cfg *appConfig) respondWithToken(w http.ResponseWriter, boardId uuid.UUID, code int) {
	token, err := auth.MakeJWT(boardId, cfg.secret, cfg.tokenTTL)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusInternalServerError, "couldn't make token", err)
		return
	}

	cookie := cfg.makeTokenCookie(boardId, token)
	http.SetCookie(w, &cookie)

	responses.RespondWithJSON(w, code, tokenResponse{ID: boardId, Token: token})
}

func (cfg *appConfig) boardHandler(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseBoardId(r)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "invalid board id", err)
		return
	}

	onlyHighlighted, err := formBool(r, "highlighted")
	if err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "invalid query", err)
		return
	}

	b, err := cfg.annotations.Board(r.Context(), boardId)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	squares := b.Squares()
	if onlyHighlighted {
		squares = b.Highlighted()
	}

	responses.RespondWithJSON(w, http.StatusOK, boardResponse{ID: boardId, Squares: squares})
}

func (cfg *appConfig) clickHandler(w http.ResponseWriter, r *http.Request) {
	boardId, _ := parseBoardId(r)

	if err := r.ParseForm(); err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "couldn't decode request", err)
		return
	}

	mods, err := modifiersFromForm(r)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "invalid modifier", err)
		return
	}

	square, err := cfg.annotations.Click(r.Context(), boardId, r.FormValue("tile"), mods)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	cfg.broadcastSquares(boardId, square)

	if responses.IsHTMX(r) {
		responses.RespondWithComponent(w, r, http.StatusOK, board.TileFragment(square, cfg.palette))
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, square)
}

func (cfg *appConfig) clearHandler(w http.ResponseWriter, r *http.Request) {
	boardId, _ := parseBoardId(r)

	cleared, err := cfg.annotations.Clear(r.Context(), boardId)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	cfg.broadcastSquares(boardId, cleared...)

	if responses.IsHTMX(r) {
		responses.RespondWithComponent(w, r, http.StatusOK, board.TileFragments(cleared, cfg.palette))
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, cleared)
}

func (cfg *appConfig) broadcastSquares(boardId uuid.UUID, squares ...board.Square) {
	for _, square := range squares {
		msg, err := utils.TemplString(board.TileFragment(square, cfg.palette))
		if err != nil {
			responses.LogError("couldn't render tile", err)
			continue
		}

		cfg.hub.Broadcast(boardId, []byte(msg))
	}
}

func modifiersFromForm(r *http.Request) (highlight.Modifiers, error) {
	var mods highlight.Modifiers
	var err error

	if mods.Shift, err = formBool(r, "shift"); err != nil {
		return mods, err
	}
	if mods.Ctrl, err = formBool(r, "ctrl"); err != nil {
		return mods, err
	}
	if mods.Alt, err = formBool(r, "alt"); err != nil {
		return mods, err
	}

	return mods, nil
}

// formBool accepts strconv booleans and the "on" sent by checkboxes.
func formBool(r *http.Request, key string) (bool, error) {
	v := r.FormValue(key)
	switch v {
	case "":
		return false, nil
	case "on":
		return true, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%v: %w", key, err)
	}
	return b, nil
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, annotations.ErrBoardNotFound):
		responses.RespondWithAnError(w, http.StatusNotFound, "board not found", err)
	case errors.Is(err, board.ErrUnknownTile):
		responses.RespondWithAnError(w, http.StatusBadRequest, "unknown tile", err)
	case errors.Is(err, annotations.ErrWrongPasscode):
		responses.RespondWithAnError(w, http.StatusUnauthorized, "wrong passcode", err)
	default:
		responses.RespondWithAnError(w, http.StatusInternalServerError, "something went wrong", err)
	}
}
