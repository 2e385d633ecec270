package roundhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archiveexport "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/exporters"
	roundservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/application"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
)

// RoundHandlers serves one scorecard session over HTTP. Session calls are
// serialized; archive reads for exports are not.
type RoundHandlers struct {
	mu      sync.Mutex
	session *roundservice.Session
	archive archiveservice.Service
	logger  *slog.Logger
	clock   roundutil.Clock
	palette archiveexport.ChartPalette
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(session *roundservice.Session, archive archiveservice.Service, logger *slog.Logger, clock roundutil.Clock) Handlers {
	if clock == nil {
		clock = roundutil.RealClock{}
	}
	return &RoundHandlers{
		session: session,
		archive: archive,
		logger:  logger,
		clock:   clock,
		palette: archiveexport.DefaultPalette,
	}
}

// Routes mounts the scorecard API.
func (h *RoundHandlers) Routes(r chi.Router) {
	r.Get("/state", h.HandleGetState)
	r.Post("/players", h.HandleAddPlayer)
	r.Put("/holes", h.HandleSetHoleCount)
	r.Post("/start", h.HandleStartRound)
	r.Put("/par", h.HandleSetPar)
	r.Put("/scores/{player}", h.HandleEnterScore)
	r.Post("/save", h.HandleSaveRound)
	r.Post("/home", h.HandleBackToHome)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.HandleListGames)
		r.Post("/open", h.HandleOpenSavedGames)
		r.Post("/close", h.HandleCloseSavedGames)
		r.Delete("/{index}", h.HandleDeleteGame)
		r.Get("/{index}/scorecard.xlsx", h.HandleExportScorecard)
		r.Get("/{index}/chart.png", h.HandleRenderChart)
	})
}

// stateResponse is returned by every session endpoint.
type stateResponse struct {
	State  roundservice.State   `json:"state"`
	Notice *roundservice.Notice `json:"notice,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *RoundHandlers) respondState(w http.ResponseWriter, notice roundservice.Notice) {
	resp := stateResponse{State: h.session.State()}
	if !notice.IsZero() {
		resp.Notice = &notice
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *RoundHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Request failed", attr.String("path", r.URL.Path), attr.Error(err))
	} else {
		h.logger.DebugContext(r.Context(), "Request rejected", attr.String("path", r.URL.Path), attr.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var errBadRequest = errors.New("malformed request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, roundtypes.ErrEmptyPlayerName),
		errors.Is(err, roundtypes.ErrEmptyPar),
		errors.Is(err, roundtypes.ErrPlayerOutOfRange),
		errors.Is(err, archiveservice.ErrUnrecognizedDate):
		return http.StatusBadRequest
	case errors.Is(err, archiveservice.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, roundservice.ErrWrongView),
		errors.Is(err, roundservice.ErrNoRound),
		errors.Is(err, roundtypes.ErrNotReady),
		errors.Is(err, roundtypes.ErrRoundFinished),
		errors.Is(err, roundtypes.ErrHoleNotCurrent),
		errors.Is(err, roundtypes.ErrParAlreadySet),
		errors.Is(err, roundtypes.ErrParNotSet):
		return http.StatusConflict
	case errors.Is(err, archiveservice.ErrArchiveUnreadable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadRequest
	}
	return nil
}

func intParam(r *http.Request, name string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errBadRequest
	}
	return n, nil
}
