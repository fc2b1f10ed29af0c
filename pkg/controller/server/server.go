package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/utils/errutil"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type cursorEntry struct {
	RepoURL    types.RepoURL      `json:"repo_url"`
	LastNumber *types.IssueNumber `json:"last_number"`
}

type cursorsResponse struct {
	Cursors []cursorEntry `json:"cursors"`
}

func newCursorsResponse(cursors model.Cursors) *cursorsResponse {
	resp := &cursorsResponse{Cursors: make([]cursorEntry, 0, len(cursors))}
	for url, n := range cursors {
		resp.Cursors = append(resp.Cursors, cursorEntry{RepoURL: url, LastNumber: n})
	}
	slices.SortFunc(resp.Cursors, func(a, b cursorEntry) int {
		return strings.Compare(string(a.RepoURL), string(b.RepoURL))
	})
	return resp
}

// New builds the status server. It only reads persisted state through uc.
func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/cursors", func(w http.ResponseWriter, r *http.Request) {
		cursors, err := uc.ListCursors(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list cursors", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list cursors"})
			return
		}

		writeJSON(w, http.StatusOK, newCursorsResponse(cursors))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
