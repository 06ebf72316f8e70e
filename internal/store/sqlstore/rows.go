package sqlstore

// Row types map the tables created by the schema migrations. The
// autoincrement ID keeps insertion order.

type teamMemberRow struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
	NIM  string `gorm:"column:nim"`
}

func (teamMemberRow) TableName() string { return "team_members" }

type scoreboardRow struct {
	ID          uint   `gorm:"primaryKey"`
	TeamName    string `gorm:"column:team_name"`
	Score       int    `gorm:"column:score"`
	LastUpdated string `gorm:"column:last_updated"`
}

func (scoreboardRow) TableName() string { return "scoreboard" }

type settingRow struct {
	ID          uint   `gorm:"primaryKey"`
	SettingName string `gorm:"column:setting_name"`
	Value       string `gorm:"column:value"`
}

func (settingRow) TableName() string { return "settings" }

type feedbackRow struct {
	ID              uint   `gorm:"primaryKey"`
	Timestamp       string `gorm:"column:timestamp"`
	FeedbackMessage string `gorm:"column:feedback_message"`
}

func (feedbackRow) TableName() string { return "feedback_log" }

type gameHistoryRow struct {
	ID        uint   `gorm:"primaryKey"`
	StartTime string `gorm:"column:start_time"`
	EndTime   string `gorm:"column:end_time"`
	Winner    string `gorm:"column:winner"`
	AoScore   int    `gorm:"column:ao_score"`
	AkaScore  int    `gorm:"column:aka_score"`
}

func (gameHistoryRow) TableName() string { return "game_history" }

type seededTableRow struct {
	Name     string `gorm:"column:table_name;primaryKey"`
	SeededAt string `gorm:"column:seeded_at"`
}

func (seededTableRow) TableName() string { return "seeded_tables" }
