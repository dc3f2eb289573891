package responses

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/a-h/templ"
	"github.com/charmbracelet/log"
)

func getCaller() string {
	if _, file, line, ok := runtime.Caller(2); ok {
		filePaths := strings.Split(file, "/")
		return fmt.Sprintf("%v:%v", filePaths[len(filePaths)-1], line)
	}
	return ""
}

func RespondWithAnError(w http.ResponseWriter, code int, message string, err error) {
	caller := getCaller()
	log.Error(message, "caller", caller, "code", code, "err", err)
	http.Error(w, message, code)
}

func LogError(message string, err error) {
	caller := getCaller()
	log.Error(message, "caller", caller, "err", err)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		caller := getCaller()
		log.Error("couldn't marshal response", "caller", caller, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		log.Debug("couldn't write response", "err", err)
	}
}

func RespondWithComponent(w http.ResponseWriter, r *http.Request, code int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := c.Render(r.Context(), w); err != nil {
		caller := getCaller()
		log.Error("couldn't render component", "caller", caller, "err", err)
	}
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
