package models

// Mission bounds for the generated point reward
const (
	MissionMinPoints = 50
	MissionMaxPoints = 200
)

// Mission is a generated daily learning task with a point reward
type Mission struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// ClampPoints forces the reward into the allowed [50,200] range
func (m *Mission) ClampPoints() {
	if m.Points < MissionMinPoints {
		m.Points = MissionMinPoints
	}
	if m.Points > MissionMaxPoints {
		m.Points = MissionMaxPoints
	}
}

// DefaultMission is returned whenever mission generation fails
func DefaultMission() Mission {
	return Mission{
		Title:       "Daily Reading",
		Description: "Read a good book for 30 minutes and write down your favorite sentence.",
		Points:      100,
	}
}
