package roundhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers is the HTTP surface of the scorecard.
type Handlers interface {
	// Session
	HandleGetState(w http.ResponseWriter, r *http.Request)
	HandleAddPlayer(w http.ResponseWriter, r *http.Request)
	HandleSetHoleCount(w http.ResponseWriter, r *http.Request)
	HandleStartRound(w http.ResponseWriter, r *http.Request)
	HandleSetPar(w http.ResponseWriter, r *http.Request)
	HandleEnterScore(w http.ResponseWriter, r *http.Request)
	HandleSaveRound(w http.ResponseWriter, r *http.Request)
	HandleBackToHome(w http.ResponseWriter, r *http.Request)

	// Saved games
	HandleOpenSavedGames(w http.ResponseWriter, r *http.Request)
	HandleCloseSavedGames(w http.ResponseWriter, r *http.Request)
	HandleListGames(w http.ResponseWriter, r *http.Request)
	HandleDeleteGame(w http.ResponseWriter, r *http.Request)
	HandleExportScorecard(w http.ResponseWriter, r *http.Request)
	HandleRenderChart(w http.ResponseWriter, r *http.Request)

	// Routes mounts every handler on r.
	Routes(r chi.Router)
}
