package model

// DefaultRoster is the team roster written when the roster table is created.
func DefaultRoster() []TeamMember {
	return []TeamMember{
		{Name: "Elsy Aliffia Sirony Putri", NIM: "2417051025"},
		{Name: "Kharisma Jaka Harum", NIM: "2417051068"},
		{Name: "Rheal Iftiqar Rozak", NIM: "2417051029"},
		{Name: "Yulia Nuritnasari", NIM: "2457051008"},
	}
}

// DefaultTeams are the AO and AKA team names of a fresh scoreboard.
const (
	DefaultAoTeam  = "Naruto"
	DefaultAkaTeam = "Sasuke"
)

// DefaultSettings returns the settings written when the settings table is created.
func DefaultSettings() *Settings {
	s := NewSettings()
	s.Set("theme", Text("dark"))
	s.Set("data_privacy", Bool(false))
	return s
}
