// internal/game/controller.go
//
// Round controller: the three-round state machine of a session.
//
//	AwaitingRound0 → AwaitingRound1 → AwaitingRound2 → Finished
//
// All rounds are generated when the controller is built. Only the active round's
// input is enabled. Confirming it reads the guess, locks the input, scores it,
// reveals the answer and unlocks the next input, or composes the result and shows
// the overlay after the last round.
//
// A controller is driven by one host, which serializes commit events; it is not
// safe for concurrent use.

package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Controller owns the rounds and score entries of one session.
type Controller struct {
	host    Host
	date    time.Time
	rounds  [RoundCount]Round
	guesses [RoundCount]int
	entries [RoundCount]ScoreEntry
	state   State
	result  *GameResult
}

// NewController generates the rounds for date, registers the commit handlers
// on host and leaves only the first input enabled.
// Returns an error wrapping ErrMissingElement if host lacks a field.
func NewController(date time.Time, host Host) (*Controller, error) {
	c := &Controller{
		host:   host,
		date:   date,
		rounds: GenerateDay(date),
		state:  AwaitingRound0,
	}
	if err := c.bind(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) bind() error {
	for i := range RoundCount {
		id := GuessField(i)
		if err := c.host.OnCommit(id, func() error { return c.Commit(i) }); err != nil {
			return fmt.Errorf("bind %s: %w", id, err)
		}
		if err := c.host.SetFieldEnabled(id, i == 0); err != nil {
			return fmt.Errorf("init %s: %w", id, err)
		}
		if err := c.host.SetFieldContent(AnswerField(i), ""); err != nil {
			return fmt.Errorf("init %s: %w", AnswerField(i), err)
		}
	}
	for _, id := range []string{TitleField, ScoreField, CompositionField} {
		if err := c.host.SetFieldContent(id, ""); err != nil {
			return fmt.Errorf("init %s: %w", id, err)
		}
	}
	return c.host.Focus(GuessField(0))
}

// Commit confirms the guess currently typed in round i's input.
//
// Errors:
//   - ErrOutOfSequence: i is not the active round (already locked, or not yet
//     unlocked). Nothing changes.
//   - ErrInvalidGuess: the input does not hold an integer in [0,360]. The round
//     stays open for another try.
//   - ErrMissingElement: the host lost a field; an integration fault.
func (c *Controller) Commit(i int) error {
	if c.state == Finished || i != int(c.state) {
		return fmt.Errorf("%w: round %d while %s", ErrOutOfSequence, i, c.state)
	}
	input := GuessField(i)
	raw, err := c.host.FieldValue(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	guess, err := ParseGuess(raw)
	if err != nil {
		return err
	}
	if err := c.host.SetFieldEnabled(input, false); err != nil {
		return fmt.Errorf("lock %s: %w", input, err)
	}

	entry := Score(guess, c.rounds[i].TrueAngle)
	entry.RoundIndex = i
	c.guesses[i] = guess
	c.entries[i] = entry
	c.state++

	log.Debug().
		Int("round", i).
		Int("guess", guess).
		Str("category", string(entry.Category)).
		Float64("points", entry.Points).
		Msg("round scored")

	if err := c.host.SetFieldContent(AnswerField(i), Reveal(c.rounds[i], entry)); err != nil {
		return fmt.Errorf("reveal %s: %w", AnswerField(i), err)
	}
	if c.state == Finished {
		return c.finish()
	}
	next := GuessField(i + 1)
	if err := c.host.SetFieldEnabled(next, true); err != nil {
		return fmt.Errorf("unlock %s: %w", next, err)
	}
	return c.host.Focus(next)
}

// finish composes the result once and shows the popup.
func (c *Controller) finish() error {
	res := Compose(c.entries)
	c.result = &res
	log.Debug().Float64("total", res.Total).Str("verdict", res.Verdict).Msg("game finished")

	popup := []struct{ id, text string }{
		{TitleField, res.Verdict},
		{ScoreField, res.Score},
		{CompositionField, res.Breakdown},
	}
	for _, f := range popup {
		if err := c.host.SetFieldContent(f.id, f.text); err != nil {
			return fmt.Errorf("popup %s: %w", f.id, err)
		}
	}
	return c.host.ShowOverlay()
}

// Reveal is the answer cell content: the true angle and the points earned,
// tagged with the category so the page can color it.
func Reveal(r Round, e ScoreEntry) string {
	return fmt.Sprintf(`<span>%d</span><br/><span id="score%d" class="%s">+%s</span>`,
		r.TrueAngle, r.Index+1, e.Category, FormatPoints(e.Points))
}

func (c *Controller) State() State { return c.state }

// Date is the calendar day the rounds were generated for.
func (c *Controller) Date() time.Time { return c.date }

func (c *Controller) Rounds() [RoundCount]Round { return c.rounds }

// Completed is the number of confirmed rounds.
func (c *Controller) Completed() int { return int(c.state) }

// Entries returns the score entries of the confirmed rounds, in order.
func (c *Controller) Entries() []ScoreEntry {
	out := make([]ScoreEntry, c.Completed())
	copy(out, c.entries[:c.Completed()])
	return out
}

// Guesses returns the accepted guesses, in order.
func (c *Controller) Guesses() []int {
	out := make([]int, c.Completed())
	copy(out, c.guesses[:c.Completed()])
	return out
}

// Result returns the composed result once the session is finished.
func (c *Controller) Result() (GameResult, bool) {
	if c.result == nil {
		return GameResult{}, false
	}
	return *c.result, true
}
