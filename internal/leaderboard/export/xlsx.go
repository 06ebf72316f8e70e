// Package export renders a leaderboard as a spreadsheet or a chart.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/table"
)

// SheetName is the worksheet holding the leaderboard.
const SheetName = "Leaderboard"

var header = []interface{}{"rank", "username", "total_score", "last_played"}

// WriteXLSX writes rows as a single-sheet workbook with a header row.
func WriteXLSX(w io.Writer, rows []model.LeaderboardRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := []interface{}{row.Rank, row.Username, row.TotalScore, table.FormatTime(row.LastPlayed)}
		if err := f.SetSheetRow(SheetName, axis, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(SheetName, "B", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "D", "D", 20); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
