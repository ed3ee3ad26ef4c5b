// Package app wires configuration, session state, and the command boundary together.
package app

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/frudas24/deskpilot/internal/calib"
	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/displays", a.handleDisplays)
	mux.HandleFunc("/api/board", a.handleBoard)
	mux.HandleFunc("/api/input", a.handleInput)
	mux.HandleFunc("/api/command", a.Command().HandleHTTP)
	mux.Handle("/ws/command", a.Command())
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", a.staticFileServer(staticDir))
}

type loginRequest struct {
	Password string `json:"password"`
}

type inputRequest struct {
	Enabled *bool `json:"enabled"`
}

type boardRequest struct {
	Display int             `json:"display"`
	Area    *geom.BoardArea `json:"area,omitempty"`
	Rect    *calib.Rect     `json:"rect,omitempty"`
}

type stateResponse struct {
	Authenticated bool            `json:"authenticated"`
	AuthRequired  bool            `json:"authRequired"`
	InputEnabled  bool            `json:"inputEnabled"`
	GestureMode   string          `json:"gestureMode"`
	Capture       string          `json:"captureBackend"`
	Board         *geom.BoardArea `json:"board,omitempty"`
	Display       int             `json:"display,omitempty"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		a.log.Warn("login rejected", zap.String("remote", r.RemoteAddr))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	writeJSON(w, map[string]bool{"ok": true})
}

// handleState returns current session state and calibration status.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		Authenticated: snap.Authenticated,
		AuthRequired:  snap.AuthRequired,
		InputEnabled:  snap.InputEnabled,
		GestureMode:   string(a.sequencer.Mode()),
		Capture:       a.cfg.CaptureBackend,
		Display:       snap.Calib.Display,
	}
	if snap.Calib.HasBoard() {
		board := snap.Calib.Board
		resp.Board = &board
	}
	writeJSON(w, resp)
}

// handleDisplays returns the list of displays.
func (a *App) handleDisplays(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	list, err := a.ListDisplays()
	if err != nil {
		a.log.Warn("list displays failed", zap.Error(err))
		http.Error(w, "failed to list displays", http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

// handleBoard reads or replaces the stored board calibration.
func (a *App) handleBoard(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, a.session.GetCalib())
	case http.MethodPost:
		var req boardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		c := calib.Calib{Display: req.Display}
		switch {
		case req.Area != nil:
			c.Board = *req.Area
		case req.Rect != nil:
			c.Board = req.Rect.Area()
		default:
			http.Error(w, "area or rect is required", http.StatusBadRequest)
			return
		}
		if err := c.Board.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := a.SaveBoard(c); err != nil {
			a.log.Error("save calibration failed", zap.Error(err))
			http.Error(w, "failed to save calibration", http.StatusInternalServerError)
			return
		}
		writeJSON(w, c)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleInput toggles the pointer kill switch.
func (a *App) handleInput(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	a.session.SetInputEnabled(*req.Enabled)
	a.log.Info("pointer input toggled", zap.Bool("enabled", *req.Enabled))
	writeJSON(w, map[string]bool{"inputEnabled": *req.Enabled})
}

// requireAuth returns false and writes an error if the request is not authorized.
func (a *App) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !a.session.Authorize(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func (a *App) staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		a.log.Warn("static assets unavailable", zap.Error(err))
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
