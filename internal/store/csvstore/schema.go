package csvstore

import "github.com/festy23/training_grounds/internal/table"

// Table schemas. Column order and header text are part of the on-disk format.
var (
	teamMembersTable = table.Schema{
		Name:    "team_members",
		File:    "team_members.csv",
		Columns: []string{"name", "nim"},
	}
	scoreboardTable = table.Schema{
		Name:    "scoreboard",
		File:    "scoreboard_data.csv",
		Columns: []string{"team_name", "score", "last_updated"},
	}
	settingsTable = table.Schema{
		Name:    "settings",
		File:    "settings.csv",
		Columns: []string{"setting_name", "value"},
	}
	feedbackTable = table.Schema{
		Name:    "feedback_log",
		File:    "feedback_log.csv",
		Columns: []string{"timestamp", "feedback_message"},
	}
	historyTable = table.Schema{
		Name:    "game_history",
		File:    "game_history.csv",
		Columns: []string{"start_time", "end_time", "winner", "ao_score", "aka_score"},
	}
)
