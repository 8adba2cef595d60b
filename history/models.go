package history

import "time"

// Models lists every table the store migrates.
var Models = []any{
	&Match{},
	&Turn{},
	&Breach{},
}

// Match is one game from config frame to end frame.
type Match struct {
	ID         string `gorm:"primaryKey;size:36"`
	Seed       string `gorm:"size:20"` // decimal; uint64 does not fit SQLite INTEGER
	StartedAt  time.Time
	EndedAt    *time.Time
	Lane       string `gorm:"size:16"`
	SpawnX     *int
	SpawnY     *int
	CommitTurn *int
	FinalTurn  int
	Winner     int
	Turns      []Turn   `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Breaches   []Breach `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// Turn is one planned turn.
type Turn struct {
	ID        uint   `gorm:"primaryKey"`
	MatchID   string `gorm:"size:36;index"`
	Number    int    `gorm:"index"`
	Cores     float64
	Bits      float64
	Placed    int
	Skipped   int
	Rules     string `gorm:"size:255"` // fired rules, comma separated
	LeftRisk  *float64
	RightRisk *float64
}

// Breach is one opponent unit reaching our edge.
type Breach struct {
	ID      uint   `gorm:"primaryKey"`
	MatchID string `gorm:"size:36;index"`
	Turn    int
	X       int
	Y       int
}
