// internal/httpserver/render.go
//
// HTML rendering of the game page.
// Components are plain templ.ComponentFuncs: the page shell, one SVG per round
// drawn from its game.Drawing, the guess inputs, the answer cells and the
// end-of-game popup. Initial visibility comes from the session's UI snapshot,
// so a reload shows the same page the player left.

package httpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/irevoire/angle/internal/game"
	"github.com/irevoire/angle/internal/uihost"
)

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

// htmlWriter remembers the first write error so components can print freely.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) printf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func points(ps []game.Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func attr(s string) string { return templ.EscapeString(s) }

func hidden(b bool) string {
	if b {
		return " hidden"
	}
	return ""
}

func display(b bool) string {
	if b {
		return "block"
	}
	return "none"
}

// drawingView renders one round as an inline SVG. Shapes are painted in the
// drawing's order: discs, polygons, rays.
func drawingView(d game.Drawing) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		size := num(d.Size)
		clipID := "keepAngle-" + strconv.Itoa(d.Index)

		h.printf(`<svg version="1.1" baseProfile="full" width="%s" height="%s" xmlns="http://www.w3.org/2000/svg">`, size, size)
		for _, c := range d.Discs {
			if c.Clip != nil {
				h.printf(`<defs><clipPath id="%s"><polygon points="%s"/></clipPath></defs>`, clipID, points(c.Clip))
			}
		}
		for _, c := range d.Discs {
			clip := ""
			if c.Clip != nil {
				clip = ` clip-path="url(#` + clipID + `)"`
			}
			h.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
				num(c.Center.X), num(c.Center.Y), num(c.Radius), attr(c.Color), clip)
		}
		for _, p := range d.Polygons {
			h.printf(`<polygon points="%s" fill="%s"/>`, points(p.Points), attr(p.Color))
		}
		for _, ray := range d.Rays {
			h.printf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
				num(ray.From.X), num(ray.From.Y), num(ray.To.X), num(ray.To.Y), attr(ray.Color))
		}
		h.printf(`</svg>`)
		return h.err
	})
}

// inputView renders the guess input of round i. Inputs not yet unlocked are
// hidden; confirmed ones stay visible but read-only.
func inputView(i int, f uihost.Field) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		readonly := ""
		if !f.Enabled {
			readonly = " readonly"
		}
		h.printf(`<input type="number" id="%s" min="0" max="360" data-commit value="%s"%s%s/>`,
			game.GuessField(i), attr(f.Value), readonly, hidden(!f.Enabled && f.Value == ""))
		return h.err
	})
}

// pageView renders the whole game page for p.
func pageView(p *play, palette game.Palette) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snap := p.host.Snapshot()
		field := func(id string) uihost.Field { return snap.Fields[id] }
		h := &htmlWriter{w: w}

		h.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.printf(`<title>Guess the angle</title><link rel="stylesheet" href="/static/style.css"/></head>`)
		h.printf(`<body><main>`)

		h.printf(`<div class="overlay" id="overlay" style="display: %s"></div>`, display(snap.Overlay))
		h.printf(`<div class="popup" id="popup" style="display: %s">`, display(snap.Overlay))
		h.printf(`<h3 id="%s">%s</h3>`, game.TitleField, attr(field(game.TitleField).Content))
		h.printf(`<p id="%s">%s</p>`, game.ScoreField, attr(field(game.ScoreField).Content))
		h.printf(`<p id="%s">%s</p>`, game.CompositionField, attr(field(game.CompositionField).Content))
		h.printf(`</div>`)

		h.printf(`<table><tr><th>Guess</th><th>The</th><th>Angle</th></tr><tr>`)
		if h.err != nil {
			return h.err
		}
		for _, rd := range p.ctrl.Rounds() {
			h.printf(`<td>`)
			if h.err == nil {
				h.err = drawingView(rd.Drawing(palette)).Render(ctx, w)
			}
			h.printf(`</td>`)
		}
		h.printf(`</tr><tr>`)
		for i := range game.RoundCount {
			h.printf(`<td>`)
			if h.err == nil {
				h.err = inputView(i, field(game.GuessField(i))).Render(ctx, w)
			}
			h.printf(`</td>`)
		}
		h.printf(`</tr><tr>`)
		for i := range game.RoundCount {
			id := game.AnswerField(i)
			content := field(id).Content
			// Reveal fragments are built by the game from numbers and category names.
			h.printf(`<td id="%s"%s>%s</td>`, id, hidden(content == ""), content)
		}
		h.printf(`</tr></table></main><script src="/static/game.js"></script></body></html>`)
		return h.err
	})
}
