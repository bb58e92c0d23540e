// internal/uihost/fields.go
//
// In-memory UI host: a table of named fields mirroring the game page.
// The HTTP layer keeps one per session, feeds player input into it
// (SetValue + Commit) and ships its Snapshot to the browser, which applies it
// to the DOM.
//
// Not safe for concurrent use; callers serialize access per session.

package uihost

import (
	"fmt"

	"github.com/irevoire/angle/internal/game"
)

var (
	// ErrUnknownField wraps game.ErrMissingElement.
	ErrUnknownField = fmt.Errorf("%w: unknown field", game.ErrMissingElement)
	// ErrLocked: input on a disabled field. Wraps game.ErrOutOfSequence.
	ErrLocked = fmt.Errorf("%w: field is locked", game.ErrOutOfSequence)
	// ErrNoHandler: commit on a field nothing listens to.
	ErrNoHandler = fmt.Errorf("%w: no commit handler", game.ErrMissingElement)
)

// Field is the observable state of one element.
type Field struct {
	Value   string `json:"value,omitempty"`
	Content string `json:"content,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Snapshot is what the page needs to redraw itself.
type Snapshot struct {
	Fields  map[string]Field `json:"fields"`
	Focused string           `json:"focused,omitempty"`
	Overlay bool             `json:"overlay"`
}

// Fields implements game.Host over a fixed set of ids.
type Fields struct {
	fields   map[string]*Field
	handlers map[string]game.CommitHandler
	focused  string
	overlay  bool
}

// New returns a host exposing exactly ids.
func New(ids ...string) *Fields {
	f := &Fields{
		fields:   make(map[string]*Field, len(ids)),
		handlers: make(map[string]game.CommitHandler),
	}
	for _, id := range ids {
		f.fields[id] = &Field{}
	}
	return f
}

// NewGamePage returns a host with every field the game uses.
func NewGamePage() *Fields { return New(game.FieldIDs()...) }

func (f *Fields) lookup(id string) (*Field, error) {
	fl, ok := f.fields[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownField, id)
	}
	return fl, nil
}

func (f *Fields) FieldValue(id string) (string, error) {
	fl, err := f.lookup(id)
	if err != nil {
		return "", err
	}
	return fl.Value, nil
}

func (f *Fields) SetFieldContent(id, content string) error {
	fl, err := f.lookup(id)
	if err != nil {
		return err
	}
	fl.Content = content
	return nil
}

func (f *Fields) SetFieldEnabled(id string, enabled bool) error {
	fl, err := f.lookup(id)
	if err != nil {
		return err
	}
	fl.Enabled = enabled
	return nil
}

func (f *Fields) Focus(id string) error {
	if _, err := f.lookup(id); err != nil {
		return err
	}
	f.focused = id
	return nil
}

// OnCommit registers h as the single commit handler of id, replacing any
// previous one.
func (f *Fields) OnCommit(id string, h game.CommitHandler) error {
	if _, err := f.lookup(id); err != nil {
		return err
	}
	f.handlers[id] = h
	return nil
}

func (f *Fields) ShowOverlay() error {
	f.overlay = true
	return nil
}

// SetValue types v into input id, as the player would.
// Locked inputs reject edits with ErrLocked.
func (f *Fields) SetValue(id, v string) error {
	fl, err := f.lookup(id)
	if err != nil {
		return err
	}
	if !fl.Enabled {
		return fmt.Errorf("%w %q", ErrLocked, id)
	}
	fl.Value = v
	return nil
}

// Commit fires the confirm action of id and returns the handler's error.
func (f *Fields) Commit(id string) error {
	if _, err := f.lookup(id); err != nil {
		return err
	}
	h, ok := f.handlers[id]
	if !ok {
		return fmt.Errorf("%w %q", ErrNoHandler, id)
	}
	return h()
}

// Field returns a copy of field id.
func (f *Fields) Field(id string) (Field, bool) {
	fl, ok := f.fields[id]
	if !ok {
		return Field{}, false
	}
	return *fl, true
}

func (f *Fields) Overlay() bool   { return f.overlay }
func (f *Fields) Focused() string { return f.focused }

// Snapshot copies the current state of every field.
func (f *Fields) Snapshot() Snapshot {
	s := Snapshot{
		Fields:  make(map[string]Field, len(f.fields)),
		Focused: f.focused,
		Overlay: f.overlay,
	}
	for id, fl := range f.fields {
		s.Fields[id] = *fl
	}
	return s
}
