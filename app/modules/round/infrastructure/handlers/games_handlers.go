package roundhandlers

import (
	"fmt"
	"net/http"
	"strings"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archiveexport "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/exporters"
	roundservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/application"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability/attr"
)

// HandleOpenSavedGames switches the session to the saved games list, reading it fresh.
func (h *RoundHandlers) HandleOpenSavedGames(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	notice, err := h.session.ShowSavedGames(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, notice)
}

func (h *RoundHandlers) HandleCloseSavedGames(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.CloseSavedGames(); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}

// HandleDeleteGame removes the saved game at the index shown in the session's list.
func (h *RoundHandlers) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	index, err := intParam(r, "index")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	notice, err := h.session.DeleteSavedGame(r.Context(), index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, notice)
}

type listGamesResponse struct {
	Games []roundservice.SavedGame `json:"games"`
}

// HandleListGames reads the archive without touching the session. An optional
// since query keeps only rounds on or after that day; indices stay those of
// the full archive.
func (h *RoundHandlers) HandleListGames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rounds, err := h.archive.List(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	games := make([]roundservice.SavedGame, 0, len(rounds))
	if since := strings.TrimSpace(r.URL.Query().Get("since")); since != "" {
		cutoff, err := archiveservice.ParseSince(since, h.clock.Now())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		for i, rec := range rounds {
			if !rec.Date.Before(cutoff) {
				games = append(games, roundservice.NewSavedGame(i, rec))
			}
		}
	} else {
		for i, rec := range rounds {
			games = append(games, roundservice.NewSavedGame(i, rec))
		}
	}
	writeJSON(w, http.StatusOK, listGamesResponse{Games: games})
}

// HandleExportScorecard streams the saved game at index as an xlsx workbook.
func (h *RoundHandlers) HandleExportScorecard(w http.ResponseWriter, r *http.Request) {
	index, err := intParam(r, "index")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record, err := h.archive.Get(r.Context(), index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := archiveexport.ScorecardXLSX(record)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", archiveexport.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="scorecard-%s.xlsx"`, record.Date.Format("2006-01-02")))
	if _, err := w.Write(data); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to write scorecard", attr.Error(err))
	}
}

// HandleRenderChart draws the cumulative score chart of the saved game at index.
func (h *RoundHandlers) HandleRenderChart(w http.ResponseWriter, r *http.Request) {
	index, err := intParam(r, "index")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	record, err := h.archive.Get(r.Context(), index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	png, err := archiveexport.RenderScoreChart(record, h.palette)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to write chart", attr.Error(err))
	}
}
