package export

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
)

const (
	chartHeight = 480
	barWidth    = 48
	barSpacing  = 24
	minWidth    = 480
)

var (
	aoBlue   = drawing.ColorFromHex("1f4e9c")
	textGray = drawing.ColorFromHex("333333")
)

// WriteChart renders the first limit rows as a PNG bar chart of total
// scores. A bar chart needs at least one bar, so empty rows are ErrNoData.
func WriteChart(w io.Writer, rows []model.LeaderboardRow, limit int) error {
	if len(rows) == 0 {
		return model.ErrNoData
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	top := 1
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		if row.TotalScore > top {
			top = row.TotalScore
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d. %s", row.Rank, row.Username),
			Value: float64(row.TotalScore),
			Style: chart.Style{FillColor: aoBlue, StrokeColor: aoBlue},
		})
	}

	width := len(bars)*(barWidth+barSpacing) + 2*barWidth
	if width < minWidth {
		width = minWidth
	}

	graph := chart.BarChart{
		Title:      "Leaderboard",
		TitleStyle: chart.Style{FontColor: textGray},
		Width:      width,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
