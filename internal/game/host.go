// internal/game/host.go
//
// The UI host contract consumed by the controller. The host owns named fields
// (inputs, answer cells, popup lines) and dispatches one commit event per input,
// fired only on an explicit confirm action. Unknown ids must be reported with an
// error wrapping ErrMissingElement.

package game

import "strconv"

// CommitHandler runs when the player confirms an input.
type CommitHandler func() error

// Host is the page the game is played on.
type Host interface {
	FieldValue(id string) (string, error)
	SetFieldContent(id, content string) error
	SetFieldEnabled(id string, enabled bool) error
	Focus(id string) error
	OnCommit(id string, h CommitHandler) error
	ShowOverlay() error
}

// Popup field ids.
const (
	TitleField       = "the_end"
	ScoreField       = "final_score"
	CompositionField = "final_score_composition"
)

// GuessField is the input of round i ("guess1".."guess3").
func GuessField(i int) string { return "guess" + strconv.Itoa(i+1) }

// AnswerField is the reveal cell of round i ("answer1".."answer3").
func AnswerField(i int) string { return "answer" + strconv.Itoa(i+1) }

// GuessRound maps a guess field id back to its round index.
func GuessRound(id string) (int, bool) {
	for i := range RoundCount {
		if GuessField(i) == id {
			return i, true
		}
	}
	return 0, false
}

// FieldIDs lists every field a host must provide, in page order.
func FieldIDs() []string {
	ids := make([]string, 0, 2*RoundCount+3)
	for i := range RoundCount {
		ids = append(ids, GuessField(i))
	}
	for i := range RoundCount {
		ids = append(ids, AnswerField(i))
	}
	return append(ids, TitleField, ScoreField, CompositionField)
}
