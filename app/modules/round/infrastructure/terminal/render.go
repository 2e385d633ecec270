package roundterminal

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	roundservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/application"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
)

func render(w io.Writer, st roundservice.State) {
	fmt.Fprintln(w)
	switch st.View {
	case roundservice.ViewSetup:
		renderSetup(w, st)
	case roundservice.ViewPlaying:
		renderPlaying(w, st)
	case roundservice.ViewSummary:
		renderSummary(w, st)
	case roundservice.ViewSavedGames:
		renderSavedGames(w, st)
	}
}

func renderSetup(w io.Writer, st roundservice.State) {
	fmt.Fprintln(w, "== New round ==")
	holes := st.HoleCountInput
	if holes == "" {
		holes = "-"
	}
	fmt.Fprintf(w, "Holes: %s\n", holes)
	if len(st.Players) == 0 {
		fmt.Fprintln(w, "Players: none yet")
	} else {
		fmt.Fprintf(w, "Players: %s\n", strings.Join(st.Players, ", "))
	}

	cmds := "holes <n> | add <name> | games | quit"
	if st.CanStart {
		cmds = "holes <n> | add <name> | start | games | quit"
	}
	fmt.Fprintf(w, "Commands: %s\n", cmds)
}

func renderPlaying(w io.Writer, st roundservice.State) {
	snap := st.Round
	if snap == nil {
		return
	}
	hole := snap.CurrentHole
	fmt.Fprintf(w, "== Hole %d of %d ==\n", hole, snap.HoleCount)

	if snap.Phase.Kind == roundtypes.PhaseAwaitingPar {
		fmt.Fprintln(w, "Par not set.")
		fmt.Fprintln(w, "Commands: par <value> | quit")
		return
	}

	fmt.Fprintf(w, "Par %s\n", snap.ParPerHole[hole-1])
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, p := range snap.Players {
		score := snap.Scores[i][hole-1]
		if score == "" {
			score = "-"
		}
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, p.Name, score)
	}
	tw.Flush()
	fmt.Fprintln(w, "Commands: score <player #> <throws> | quit")
}

func renderSummary(w io.Writer, st roundservice.State) {
	if st.Summary == nil {
		return
	}
	fmt.Fprintln(w, "== Round complete ==")
	renderTotals(w, st.Summary.Totals)
	fmt.Fprintf(w, "Par total: %d\n", st.Summary.ParTotal)
	if st.Summary.Elapsed != "" {
		fmt.Fprintf(w, "Round time: %s\n", st.Summary.Elapsed)
	}
	renderHoles(w, st.Summary.Holes)

	if st.CanSave {
		fmt.Fprintln(w, "Commands: save | home | quit")
	} else {
		fmt.Fprintln(w, "Saved. Commands: home | quit")
	}
}

func renderSavedGames(w io.Writer, st roundservice.State) {
	fmt.Fprintln(w, "== Saved games ==")
	if len(st.SavedGames) == 0 {
		fmt.Fprintln(w, "No saved games.")
	}
	for _, g := range st.SavedGames {
		line := fmt.Sprintf("#%d  %s", g.Index+1, g.Date.Format("2006-01-02 15:04"))
		if g.DurationMinutes != nil {
			line += fmt.Sprintf("  (%d min)", *g.DurationMinutes)
		}
		fmt.Fprintln(w, line)
		renderTotals(w, g.Summary)
		renderHoles(w, g.HoleDurations)
	}
	fmt.Fprintln(w, "Commands: delete <#> | back | quit")
}

func renderTotals(w io.Writer, totals []scoredomain.PlayerTotal) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range totals {
		fmt.Fprintf(tw, "  %s\t%d\t(%s)\n", p.Player, p.TotalThrows, scoredomain.FormatDifference(p.DifferenceVsPar))
	}
	tw.Flush()
}

func renderHoles(w io.Writer, holes []scoredomain.HoleDuration) {
	for _, h := range holes {
		fmt.Fprintf(w, "  Hole %d (par %s): %s\n", h.Hole, h.Par, h.Duration)
	}
}
