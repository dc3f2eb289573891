package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/NikolaTosic-sudo/chess-marks/internal/auth"
	"github.com/NikolaTosic-sudo/chess-marks/internal/responses"
)

const tokenCookie = "board_token"

func getBoardToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return "", fmt.Errorf("malformed authorization header")
		}
		return token, nil
	}

	c, err := r.Cookie(tokenCookie)
	if err != nil {
		return "", err
	}

	if c.Value == "" {
		return "", fmt.Errorf("invalid board token")
	}

	return c.Value, nil
}

func (cfg *appConfig) getBoardId(r *http.Request) (uuid.UUID, error) {
	token, err := getBoardToken(r)
	if err != nil {
		return uuid.Nil, err
	}

	return auth.ValidateJWT(token, cfg.secret)
}

// middleWareCheckForToken rejects requests whose token was not issued for
// the board in the path.
func (cfg *appConfig) middleWareCheckForToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardId, err := parseBoardId(r)
		if err != nil {
			responses.RespondWithAnError(w, http.StatusBadRequest, "invalid board id", err)
			return
		}

		tokenBoardId, err := cfg.getBoardId(r)
		if err != nil {
			responses.RespondWithAnError(w, http.StatusUnauthorized, "unauthorized", err)
			return
		}

		if tokenBoardId != boardId {
			responses.RespondWithAnError(w, http.StatusUnauthorized, "unauthorized", errors.New("token issued for another board"))
			return
		}

		next(w, r)
	}
}

func parseBoardId(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

func (cfg *appConfig) makeCookieMaxAge(name, value, path string, maxAge int) http.Cookie {
	cookie := http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	return cookie
}

func (cfg *appConfig) makeTokenCookie(boardId uuid.UUID, token string) http.Cookie {
	return cfg.makeCookieMaxAge(tokenCookie, token, "/boards/"+boardId.String(), int(cfg.tokenTTL.Seconds()))
}
