package models

// GameMode identifies which play mode produced a session
type GameMode string

const (
	ModeReading GameMode = "reading"
	ModeWriting GameMode = "writing"
)

// Rank is the post-session performance grade
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
)

// Ranks lists ranks from best to worst
var Ranks = []Rank{RankS, RankA, RankB, RankC, RankD}

// Valid reports whether r is one of the known ranks
func (r Rank) Valid() bool {
	for _, known := range Ranks {
		if r == known {
			return true
		}
	}
	return false
}

// SessionSummary is the read-only outcome of a finished session
type SessionSummary struct {
	Mode         GameMode `json:"mode"`
	StageID      string   `json:"stage_id"`
	Tier         int      `json:"tier"`
	Score        int      `json:"score"`
	MaxScore     int      `json:"max_score"`
	Rank         Rank     `json:"rank"`
	Cleared      bool     `json:"cleared"`
	CorrectCount int      `json:"correct_count"`
	PerfectCount int      `json:"perfect_count"`
	MaxCombo     int      `json:"max_combo"`
}

// Accuracy returns the score as a percentage of the maximum
func (s SessionSummary) Accuracy() float64 {
	if s.MaxScore <= 0 {
		return 0
	}
	return float64(s.Score) / float64(s.MaxScore) * 100
}

// RewardKind is the type of a reward line
type RewardKind string

const (
	RewardCoin       RewardKind = "coin"
	RewardExperience RewardKind = "experience"
	RewardCharacter  RewardKind = "character"
	RewardFood       RewardKind = "food"
)

// RewardLine is a single granted reward
type RewardLine struct {
	Kind        RewardKind `json:"kind"`
	ID          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	Emoji       string     `json:"emoji,omitempty"`
	Amount      int        `json:"amount"`
	Rarity      Rarity     `json:"rarity,omitempty"`
}

// RewardBundle is the ordered set of rewards for one finished session
type RewardBundle []RewardLine

// Find returns the first line of the given kind
func (b RewardBundle) Find(kind RewardKind) (RewardLine, bool) {
	for _, line := range b {
		if line.Kind == kind {
			return line, true
		}
	}
	return RewardLine{}, false
}

// Count returns how many lines of the given kind the bundle holds
func (b RewardBundle) Count(kind RewardKind) int {
	n := 0
	for _, line := range b {
		if line.Kind == kind {
			n++
		}
	}
	return n
}
