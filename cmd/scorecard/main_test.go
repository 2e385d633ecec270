package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Black-And-White-Club/frolf-scorecard/app"
	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupArchive points the CLI at a fresh sqlite file holding one saved game.
func setupArchive(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "scorecard.db")
	t.Setenv("STORAGE_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("EVENTS_DRIVER", config.EventsGoChannel)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ARCHIVE_KEY", "")

	cfg, err := config.LoadConfig(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	storage, err := app.OpenStorage(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer storage.Close()

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Minute)
	repo := archivedb.NewArchiveRepository(storage.Store, cfg.Storage.ArchiveKey)
	require.NoError(t, repo.Replace(context.Background(), []archivetypes.ArchivedRound{{
		ID:            "r1",
		Date:          end,
		HoleCount:     1,
		Players:       []string{"A"},
		ParPerHole:    []string{"3"},
		Scores:        [][]string{{"4"}},
		RoundStart:    start,
		RoundEnd:      &end,
		Summary:       []scoredomain.PlayerTotal{{Player: "A", TotalThrows: 4, DifferenceVsPar: 1}},
		HoleDurations: []scoredomain.HoleDuration{{Hole: 1, Par: "3", Duration: "95s"}},
	}}))
	return dir
}

func run(t *testing.T, dir, input string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	argv := append([]string{"scorecard", "--config", filepath.Join(dir, "absent.yaml")}, args...)
	err := newCLI(strings.NewReader(input), out, io.Discard).Run(argv)
	return out.String(), err
}

func TestGamesCommands(t *testing.T) {
	dir := setupArchive(t)

	out, err := run(t, dir, "", "games", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-01 09:02")
	assert.Contains(t, out, "A 4 (+1)")

	out, err = run(t, dir, "", "games", "list", "--since", "2025-06-02")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved games.")

	out, err = run(t, dir, "", "games", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Par total: 3")
	assert.Contains(t, out, "Duration: 2 min")
	assert.Contains(t, out, "Hole 1 (par 3): 95s")

	_, err = run(t, dir, "", "games", "show", "5")
	assert.ErrorIs(t, err, archiveservice.ErrIndexOutOfRange)

	xlsxPath := filepath.Join(dir, "round.xlsx")
	_, err = run(t, dir, "", "games", "export", "--out", xlsxPath, "1")
	require.NoError(t, err)
	data, err := os.ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))

	pngPath := filepath.Join(dir, "round.png")
	_, err = run(t, dir, "", "games", "chart", "--out", pngPath, "1")
	require.NoError(t, err)
	data, err = os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	out, err = run(t, dir, "n\n", "games", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Not deleted.")

	out, err = run(t, dir, "", "games", "delete", "--yes", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted game #1")

	out, err = run(t, dir, "", "games", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved games.")
}

func TestGamesCommands_BadGameNumber(t *testing.T) {
	dir := setupArchive(t)
	_, err := run(t, dir, "", "games", "show", "zero")
	assert.Error(t, err)
}

func TestMigrateStatus(t *testing.T) {
	dir := setupArchive(t)
	out, err := run(t, dir, "", "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied:")
}

func TestMigrate_RejectsNonSQLDriver(t *testing.T) {
	dir := setupArchive(t)
	t.Setenv("STORAGE_DRIVER", config.DriverMemory)
	_, err := run(t, dir, "", "migrate", "status")
	assert.Error(t, err)
}

func TestPlay_EndsWithInput(t *testing.T) {
	dir := setupArchive(t)
	out, err := run(t, dir, "holes 1\nadd A\nstart\npar 3\nscore 1 3\nsave\nquit\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "* Game saved!")

	out, err = run(t, dir, "", "games", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "A 3 (+0)")
	assert.Contains(t, out, "A 4 (+1)")
}
