package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	archiveexport "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/exporters"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
	"github.com/urfave/cli/v2"
)

func newGamesCommand() *cli.Command {
	return &cli.Command{
		Name:  "games",
		Usage: "browse and manage saved games",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list saved games, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "since", Usage: `only games on or after a date ("2025-06-01", "yesterday", "3 days ago")`},
				},
				Action: func(c *cli.Context) error {
					a, err := loadApp(c)
					if err != nil {
						return err
					}
					defer a.Close()

					rounds, err := a.Modules.ArchiveModule.ArchiveService.List(c.Context)
					if err != nil {
						return err
					}

					var since time.Time
					if s := c.String("since"); s != "" {
						if since, err = archiveservice.ParseSince(s, time.Now()); err != nil {
							return err
						}
					}
					return printGameList(c.App.Writer, rounds, since)
				},
			},
			{
				Name:      "show",
				Usage:     "show one saved game",
				ArgsUsage: "<#>",
				Action: func(c *cli.Context) error {
					record, err := loadGame(c)
					if err != nil {
						return err
					}
					printGame(c.App.Writer, record)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete one saved game",
				ArgsUsage: "<#>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
				},
				Action: deleteGame,
			},
			{
				Name:      "export",
				Usage:     "write a saved game to an xlsx scorecard",
				ArgsUsage: "<#>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output .xlsx path"},
				},
				Action: func(c *cli.Context) error {
					record, err := loadGame(c)
					if err != nil {
						return err
					}
					data, err := archiveexport.ScorecardXLSX(record)
					if err != nil {
						return err
					}
					return writeOutput(c, data)
				},
			},
			{
				Name:      "chart",
				Usage:     "render a saved game's cumulative score chart as PNG",
				ArgsUsage: "<#>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output .png path"},
				},
				Action: func(c *cli.Context) error {
					record, err := loadGame(c)
					if err != nil {
						return err
					}
					data, err := archiveexport.RenderScoreChart(record, archiveexport.DefaultPalette)
					if err != nil {
						return err
					}
					return writeOutput(c, data)
				},
			},
		},
	}
}

// gameIndex turns the 1-based game number argument into an archive index.
func gameIndex(c *cli.Context) (int, error) {
	n, err := strconv.Atoi(c.Args().First())
	if err != nil || n < 1 {
		return 0, fmt.Errorf("game number must be a positive number, got %q", c.Args().First())
	}
	return n - 1, nil
}

func loadGame(c *cli.Context) (archivetypes.ArchivedRound, error) {
	index, err := gameIndex(c)
	if err != nil {
		return archivetypes.ArchivedRound{}, err
	}
	a, err := loadApp(c)
	if err != nil {
		return archivetypes.ArchivedRound{}, err
	}
	defer a.Close()
	return a.Modules.ArchiveModule.ArchiveService.Get(c.Context, index)
}

func deleteGame(c *cli.Context) error {
	index, err := gameIndex(c)
	if err != nil {
		return err
	}
	a, err := loadApp(c)
	if err != nil {
		return err
	}
	defer a.Close()

	service := a.Modules.ArchiveModule.ArchiveService
	rounds, err := service.List(c.Context)
	if err != nil {
		return err
	}
	if index >= len(rounds) {
		return archiveservice.ErrIndexOutOfRange
	}

	if !c.Bool("yes") {
		fmt.Fprintf(c.App.Writer, "Delete game #%d from %s? [y/N] ", index+1, rounds[index].Date.Format("2006-01-02 15:04"))
		answer, _ := bufio.NewReader(c.App.Reader).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(c.App.Writer, "Not deleted.")
			return nil
		}
	}

	if _, err := service.Delete(c.Context, rounds, index); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Deleted game #%d\n", index+1)
	return nil
}

func writeOutput(c *cli.Context, data []byte) error {
	path := c.String("out")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}

func printGameList(w io.Writer, rounds []archivetypes.ArchivedRound, since time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDATE\tMIN\tHOLES\tRESULTS")
	shown := 0
	for i, r := range rounds {
		if !since.IsZero() && r.Date.Before(since) {
			continue
		}
		minutes := "-"
		if m, ok := r.DurationMinutes(); ok {
			minutes = strconv.Itoa(m)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", i+1, r.Date.Format("2006-01-02 15:04"), minutes, r.HoleCount, resultLine(r.Summary))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(w, "No saved games.")
		return nil
	}
	return tw.Flush()
}

func resultLine(totals []scoredomain.PlayerTotal) string {
	parts := make([]string, len(totals))
	for i, p := range totals {
		parts[i] = fmt.Sprintf("%s %d (%s)", p.Player, p.TotalThrows, scoredomain.FormatDifference(p.DifferenceVsPar))
	}
	return strings.Join(parts, ", ")
}

func printGame(w io.Writer, r archivetypes.ArchivedRound) {
	fmt.Fprintf(w, "Date: %s\n", r.Date.Format("2006-01-02 15:04"))
	if m, ok := r.DurationMinutes(); ok {
		fmt.Fprintf(w, "Duration: %d min\n", m)
	}
	fmt.Fprintf(w, "Par total: %d\n", r.ParTotal())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range r.Summary {
		fmt.Fprintf(tw, "  %s\t%d\t(%s)\n", p.Player, p.TotalThrows, scoredomain.FormatDifference(p.DifferenceVsPar))
	}
	tw.Flush()
	for _, h := range r.HoleDurations {
		fmt.Fprintf(w, "  Hole %d (par %s): %s\n", h.Hole, h.Par, h.Duration)
	}
}
