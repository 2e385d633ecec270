package roundterminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	roundservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/application"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability/attr"
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// Terminal plays a scorecard session over a line-oriented reader and writer.
type Terminal struct {
	session *roundservice.Session
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// NewTerminal creates a Terminal reading commands from in and drawing to out.
func NewTerminal(session *roundservice.Session, in io.Reader, out io.Writer, logger *slog.Logger) *Terminal {
	return &Terminal{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run draws the current screen and executes commands until the input ends,
// the user quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		render(t.out, t.session.State())

		line, ok := t.prompt("> ")
		if !ok {
			return t.in.Err()
		}
		if line == "" {
			continue
		}

		err := t.dispatch(ctx, line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			t.logger.DebugContext(ctx, "Command rejected", attr.String("command", line), attr.Error(err))
			fmt.Fprintf(t.out, "! %v\n", err)
		}
	}
}

func (t *Terminal) prompt(label string) (string, bool) {
	fmt.Fprint(t.out, label)
	if !t.in.Scan() {
		fmt.Fprintln(t.out)
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *Terminal) dispatch(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	if cmd == "quit" || cmd == "q" {
		return errQuit
	}

	switch t.session.View() {
	case roundservice.ViewSetup:
		return t.setupCommand(ctx, cmd, arg)
	case roundservice.ViewPlaying:
		return t.playCommand(cmd, arg)
	case roundservice.ViewSummary:
		return t.summaryCommand(ctx, cmd)
	case roundservice.ViewSavedGames:
		return t.savedGamesCommand(ctx, cmd, arg)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (t *Terminal) setupCommand(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "holes":
		return t.session.SetHoleCount(arg)
	case "add":
		return t.session.AddPlayer(arg)
	case "start":
		return t.session.Start()
	case "games":
		notice, err := t.session.ShowSavedGames(ctx)
		t.showNotice(notice)
		return err
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (t *Terminal) playCommand(cmd, arg string) error {
	switch cmd {
	case "par":
		phase, err := t.session.Phase()
		if err != nil {
			return err
		}
		return t.session.SetPar(phase.Hole, arg)
	case "score":
		slot, value, _ := strings.Cut(arg, " ")
		n, err := strconv.Atoi(slot)
		if err != nil {
			return fmt.Errorf("player number must be a number, got %q", slot)
		}
		return t.session.EnterScore(n-1, strings.TrimSpace(value))
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (t *Terminal) summaryCommand(ctx context.Context, cmd string) error {
	switch cmd {
	case "save":
		notice, err := t.session.Save(ctx)
		t.showNotice(notice)
		return err
	case "home":
		return t.session.BackToHome()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (t *Terminal) savedGamesCommand(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "back":
		return t.session.CloseSavedGames()
	case "delete":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("game number must be a number, got %q", arg)
		}
		answer, ok := t.prompt(fmt.Sprintf("Delete game #%d? [y/N] ", n))
		if !ok || !confirmed(answer) {
			fmt.Fprintln(t.out, "Not deleted.")
			return nil
		}
		notice, err := t.session.DeleteSavedGame(ctx, n-1)
		t.showNotice(notice)
		return err
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func confirmed(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

func (t *Terminal) showNotice(n roundservice.Notice) {
	if n.IsZero() {
		return
	}
	if n.Level == roundservice.NoticeError {
		fmt.Fprintf(t.out, "! %s\n", n.Message)
		return
	}
	fmt.Fprintf(t.out, "* %s\n", n.Message)
}
