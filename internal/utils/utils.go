package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to write JSON", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]any{
		"error":   http.StatusText(status),
		"message": msg,
	})
}

func WriteText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, msg); err != nil {
		slog.Error("failed to write text", "error", err)
	}
}

// Renderer is any page that can render itself as HTML.
type Renderer interface {
	Render(w io.Writer) error
}

// WriteHTML renders page into a buffer and writes it with status 200. A render
// failure is reported as a plain-text 500 that includes the template error.
func WriteHTML(w http.ResponseWriter, page Renderer) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		slog.Error("template render failed", "error", err)
		WriteText(w, http.StatusInternalServerError, fmt.Sprintf("Failed to render template. Error: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write HTML", "error", err)
	}
}
