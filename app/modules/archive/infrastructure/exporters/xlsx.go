package archiveexport

import (
	"bytes"
	"fmt"
	"io"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	scoredomain "github.com/Black-And-White-Club/frolf-scorecard/app/modules/score/domain"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/utils"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the scorecard is written to.
const SheetName = "Scorecard"

// XLSXContentType is the MIME type of the workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteScorecardXLSX writes an archived round as a one-sheet workbook:
// a header row, a PAR row, one row per player and a Duration row.
func WriteScorecardXLSX(w io.Writer, round archivetypes.ArchivedRound) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	holes := round.HoleCount
	if holes < len(round.ParPerHole) {
		holes = len(round.ParPerHole)
	}

	header := []any{"Player"}
	for h := 1; h <= holes; h++ {
		header = append(header, fmt.Sprintf("Hole %d", h))
	}
	header = append(header, "Total", "+/-")

	rows := [][]any{header, parRow(round, holes)}
	for i, name := range round.Players {
		rows = append(rows, playerRow(round, i, name, holes))
	}
	rows = append(rows, durationRow(round, holes))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(holes + 3)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ScorecardXLSX returns the workbook bytes.
func ScorecardXLSX(round archivetypes.ArchivedRound) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteScorecardXLSX(&buf, round); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parRow(round archivetypes.ArchivedRound, holes int) []any {
	row := []any{"PAR"}
	for h := 0; h < holes; h++ {
		row = append(row, cellValue(at(round.ParPerHole, h)))
	}
	return append(row, round.ParTotal(), "")
}

func playerRow(round archivetypes.ArchivedRound, i int, name string, holes int) []any {
	var scores []string
	if i < len(round.Scores) {
		scores = round.Scores[i]
	}

	row := []any{name}
	for h := 0; h < holes; h++ {
		row = append(row, cellValue(at(scores, h)))
	}

	if i < len(round.Summary) {
		total := round.Summary[i]
		return append(row, total.TotalThrows, scoredomain.FormatDifference(total.DifferenceVsPar))
	}
	return append(row, "", "")
}

func durationRow(round archivetypes.ArchivedRound, holes int) []any {
	row := []any{"Duration"}
	for h := 0; h < holes; h++ {
		d := scoredomain.NotAvailable
		if h < len(round.HoleDurations) {
			d = round.HoleDurations[h].Duration
		}
		row = append(row, d)
	}
	elapsed := ""
	if round.RoundEnd != nil {
		elapsed = scoredomain.FormatElapsed(round.RoundEnd.Sub(round.RoundStart))
	}
	return append(row, elapsed, "")
}

// cellValue writes numeric entries as numbers and anything else verbatim.
func cellValue(raw string) any {
	if n, ok := utils.ParseLenientInt(raw); ok && fmt.Sprint(n) == raw {
		return n
	}
	return raw
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
