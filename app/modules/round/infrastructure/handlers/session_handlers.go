package roundhandlers

import (
	"net/http"

	roundservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/application"
)

type addPlayerRequest struct {
	Name string `json:"name"`
}

type holeCountRequest struct {
	HoleCount string `json:"holeCount"`
}

type parRequest struct {
	Hole int    `json:"hole"`
	Par  string `json:"par"`
}

type scoreRequest struct {
	Score string `json:"score"`
}

func (h *RoundHandlers) HandleGetState(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.respondState(w, roundservice.Notice{})
}

func (h *RoundHandlers) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.AddPlayer(req.Name); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}

func (h *RoundHandlers) HandleSetHoleCount(w http.ResponseWriter, r *http.Request) {
	var req holeCountRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.SetHoleCount(req.HoleCount); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}

func (h *RoundHandlers) HandleStartRound(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.Start(); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}

func (h *RoundHandlers) HandleSetPar(w http.ResponseWriter, r *http.Request) {
	var req parRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.SetPar(req.Hole, req.Par); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}

// HandleEnterScore records a score for the roster slot in the path.
func (h *RoundHandlers) HandleEnterScore(w http.ResponseWriter, r *http.Request) {
	player, err := intParam(r, "player")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req scoreRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.EnterScore(player, req.Score); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}

// HandleSaveRound archives the finished round. Storage failures are reported
// as an error notice with a 200 so the client keeps its summary on screen.
func (h *RoundHandlers) HandleSaveRound(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	notice, err := h.session.Save(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, notice)
}

func (h *RoundHandlers) HandleBackToHome(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.BackToHome(); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respondState(w, roundservice.Notice{})
}
