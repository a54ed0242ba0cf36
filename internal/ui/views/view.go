package views

import (
	"fmt"
	"strings"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Items          []string
	Offset         int // index of the first visible row
	ViewportHeight int
	Selected       map[string]bool
	Anchor         string
	DragActive     bool
	HasMarquee     bool
	MarqueeLeft    float32
	MarqueeTop     float32
	MarqueeRight   float32
	MarqueeBottom  float32
	StatusMessage  string
	HelpView       string
	// Mark wraps a rendered row so the mouse layer can hit-test it.
	Mark func(id, line string) string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("rubberband")
	counter := r.styles.Dim.Render(fmt.Sprintf("  %d/%d selected", len(state.Selected), len(state.Items)))
	content.WriteString(title + counter + "\n")

	for row := 0; row < state.ViewportHeight; row++ {
		idx := state.Offset + row
		if idx >= len(state.Items) {
			content.WriteString("\n")
			continue
		}
		content.WriteString(r.renderRow(state, idx, row))
		content.WriteString("\n")
	}

	status := state.StatusMessage
	if state.DragActive {
		status = "marquee active"
	}
	content.WriteString(r.styles.Status.Render(status) + "\n")
	content.WriteString(r.styles.Help.Render(state.HelpView))

	return content.String()
}

// renderRow renders one item line. row is the viewport-relative index
// used for marquee hit testing (each row spans one vertical unit).
func (r *Renderer) renderRow(state ViewState, idx, row int) string {
	id := state.Items[idx]

	marker := "  "
	if id == state.Anchor {
		marker = r.styles.Anchor.Render("▸ ")
	}

	label := id
	width := state.Width - 4
	if width > 0 && len(label) > width {
		label = label[:width]
	}

	inMarquee := state.HasMarquee &&
		state.MarqueeTop < float32(row+1) && float32(row) < state.MarqueeBottom

	var line string
	switch {
	case state.Selected[id] && inMarquee:
		line = r.styles.SelectedBg.Render(label) + r.styles.MarqueeEdge.Render(" ◆")
	case state.Selected[id]:
		line = r.styles.SelectedBg.Render(label)
	case inMarquee:
		line = r.styles.MarqueeBg.Render(label)
	default:
		line = r.styles.Item.Render(label)
	}

	out := marker + line
	if state.Mark != nil {
		out = state.Mark(id, out)
	}
	return out
}
