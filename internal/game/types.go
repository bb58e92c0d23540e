// internal/game/types.go
//
// Core type definitions for the angle guessing game.
// Defines:
//   - Point/Round: one generated round (true angle + the two ray endpoints).
//   - Category/ScoreEntry: the scored outcome of a single guess.
//   - GameResult: the composed outcome of a full three-round session.
//   - State: the round controller's position in the session.

package game

import "strconv"

// RoundCount is the number of rounds in a session.
const RoundCount = 3

// Point is a position in drawing space (a 100x100 box, origin top-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Round holds everything generated from a single seed. Immutable once built.
type Round struct {
	Index     int     `json:"index"`     // 0..RoundCount-1
	TrueAngle int     `json:"-"`         // degrees in [0,360); never sent before reveal
	RayA      Point   `json:"rayA"`      // end of the first ray, on the circle
	RayB      Point   `json:"rayB"`      // end of the second ray, on the circle
	Offset    float64 `json:"offset"`    // rotation of the first ray, radians
}

// Category is the discrete label attached to a guess.
type Category string

const (
	CategoryPerfect Category = "perfect"
	CategoryGood    Category = "good"
	CategoryAlmost  Category = "almost"
	CategoryError   Category = "error"
	CategoryFailure Category = "failure"
)

// ScoreEntry is the scored outcome of one round. Never mutated once computed.
type ScoreEntry struct {
	RoundIndex      int      `json:"roundIndex"`
	ErrorPercentage float64  `json:"errorPercentage"` // 100 = exact, 0 = 360° off
	Category        Category `json:"category"`
	Points          float64  `json:"points"` // ErrorPercentage / 3
}

// GameResult is computed once, when the last round is confirmed.
type GameResult struct {
	Total     float64 `json:"total"`
	Verdict   string  `json:"verdict"`
	Score     string  `json:"score"`     // "Score: <total>"
	Breakdown string  `json:"breakdown"` // "<p1> + <p2> + <p3>"
}

// State is the round controller's position in a session.
type State int

const (
	AwaitingRound0 State = iota
	AwaitingRound1
	AwaitingRound2
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingRound0, AwaitingRound1, AwaitingRound2:
		return "awaiting_round_" + strconv.Itoa(int(s))
	case Finished:
		return "finished"
	}
	return "unknown"
}
