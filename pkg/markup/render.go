package markup

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/zenith/pkg/color"
	"github.com/arthur-debert/zenith/pkg/errors"
	"github.com/arthur-debert/zenith/pkg/logging"
)

// Diagnostic is a non-fatal problem found while rendering, such as input
// ending with tags still open.
type Diagnostic struct {
	Message string
	Offset  int
}

// Renderer turns markup into escape-annotated text at a fixed capability
// level. A Renderer is cheap; create one per context/level pair.
type Renderer struct {
	ctx   *Context
	level color.Level
}

// NewRenderer creates a renderer over the given context. The level caps
// color fidelity: every color is downsampled to it, and LevelNone strips
// styling entirely.
func NewRenderer(ctx *Context, level color.Level) *Renderer {
	if ctx == nil {
		ctx = Default()
	}
	return &Renderer{ctx: ctx, level: level}
}

// Render renders markup, logging any diagnostics. All fatal errors abort
// with no partial output.
func (r *Renderer) Render(input string) (string, error) {
	out, diags, err := r.RenderDiagnostics(input)
	if err != nil {
		return "", err
	}

	if len(diags) > 0 {
		logger := logging.GetLogger("markup")
		for _, d := range diags {
			logger.Warn().Int("offset", d.Offset).Msg(d.Message)
		}
	}

	return out, nil
}

// activeMacro is a pending macro transform, applied to every text span
// rendered while it is active.
type activeMacro struct {
	id        int
	name      string
	args      []string
	transform TextTransform
}

// renderState carries the mutable state of one render pass
type renderState struct {
	renderer *Renderer

	stack  *scopeStack
	macros []activeMacro
	nextID int

	buff       strings.Builder
	lastParams string
	lastLink   string

	diags []Diagnostic
}

// RenderDiagnostics renders markup and returns non-fatal diagnostics
// alongside the output. Open tags at end of input are implicitly closed
// and reported; every other problem is fatal and aborts the render.
func (r *Renderer) RenderDiagnostics(input string) (string, []Diagnostic, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return "", nil, err
	}

	state := &renderState{renderer: r, stack: newScopeStack()}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenText:
			if err := state.emitText(tok.Content); err != nil {
				return "", nil, err
			}
		default:
			if err := state.applyTag(tok); err != nil {
				return "", nil, withOffset(err, tok.Offset)
			}
		}
	}

	if state.stack.depth() > 0 {
		state.diags = append(state.diags, Diagnostic{
			Message: fmt.Sprintf("input ended with %d open tag(s); closing implicitly", state.stack.depth()),
			Offset:  len(input),
		})
		released := state.stack.unwind()
		state.removeMacros(released)
	}

	state.finish()

	return state.buff.String(), state.diags, nil
}

// applyTag processes a tag's words in order. Close-words (leading '/')
// act on the scope stack immediately; open-words accumulate into a single
// delta pushed as one frame, so a later word in the same tag wins.
func (s *renderState) applyTag(tok Token) error {
	delta := Delta{}
	var opened []activeMacro

	for _, raw := range strings.Fields(tok.Content) {
		if strings.HasPrefix(raw, "/") {
			if err := s.applyClose(raw[1:]); err != nil {
				return err
			}
			continue
		}

		words, err := expandWord(s.renderer.ctx, raw, make(map[string]bool))
		if err != nil {
			return err
		}

		for _, w := range words {
			switch w.kind {
			case wordColor:
				cat := CategoryForeground
				if w.background {
					cat = CategoryBackground
				}
				delta[cat] = styleValue{set: true, color: w.color}

			case wordStyle:
				delta[w.style] = styleValue{set: true}

			case wordHyperlink:
				delta[CategoryHyperlink] = styleValue{set: true, text: w.uri}

			case wordMacro:
				transform, ok := s.renderer.ctx.LookupMacro(w.macroName)
				if !ok {
					return errors.Newf(errors.ErrUnknownReference, "unknown macro %q", "!"+w.macroName)
				}
				opened = append(opened, activeMacro{
					id:        s.nextID,
					name:      w.macroName,
					args:      w.macroArgs,
					transform: transform,
				})
				s.nextID++
			}
		}
	}

	ids := make([]int, len(opened))
	for i, m := range opened {
		ids[i] = m.id
	}

	s.stack.open(delta, ids)
	s.macros = append(s.macros, opened...)
	return nil
}

// applyClose handles one close-word argument: empty (innermost frame), a
// category name, a macro, or an alias (closing every category the alias
// sets). Closing a category nothing set is a no-op.
func (s *renderState) applyClose(arg string) error {
	switch {
	case arg == "":
		released, _ := s.stack.closeTop()
		s.removeMacros(released)
		return nil

	case strings.HasPrefix(arg, "~"):
		s.stack.closeCategory(CategoryHyperlink)
		return nil

	case strings.HasPrefix(arg, "!"):
		return s.removeMacroByName(arg[1:])
	}

	if cat, ok := closeNames[arg]; ok {
		s.stack.closeCategory(cat)
		return nil
	}

	cats, err := aliasCategories(s.renderer.ctx, arg)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		s.stack.closeCategory(cat)
	}
	return nil
}

// removeMacroByName deactivates the most recently activated macro with
// the given name. Unsetting a macro that is not active is a semantic
// error; unsetting one that was never defined is an unknown reference.
func (s *renderState) removeMacroByName(name string) error {
	if _, ok := s.renderer.ctx.LookupMacro(name); !ok {
		return errors.Newf(errors.ErrUnknownReference, "unknown macro %q", "!"+name)
	}

	for i := len(s.macros) - 1; i >= 0; i-- {
		if s.macros[i].name == name {
			id := s.macros[i].id
			s.macros = append(s.macros[:i], s.macros[i+1:]...)
			s.stack.releaseMacro(id)
			return nil
		}
	}

	return errors.Newf(errors.ErrSemantics, "macro %q is not set, so it can't be unset", "!"+name)
}

// removeMacros deactivates macros by id, in response to their owning
// frame closing. Ids already removed explicitly are skipped.
func (s *renderState) removeMacros(ids []int) {
	if len(ids) == 0 {
		return
	}

	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := s.macros[:0]
	for _, m := range s.macros {
		if !drop[m.id] {
			kept = append(kept, m)
		}
	}
	s.macros = kept
}

// emitText renders one literal text span under the current effective
// style: pending macros rewrite the text, then escape sequences are
// emitted whenever the style differs from the previous span's.
func (s *renderState) emitText(text string) error {
	for _, m := range s.macros {
		transformed, err := m.transform.Transform(text, m.args)
		if err != nil {
			return errors.Wrapf(err, errors.ErrMacroExecute, "macro %q failed", "!"+m.name)
		}
		text = transformed
	}

	params, link := s.sequenceFor(s.stack.style)

	if link != s.lastLink {
		if link != "" {
			s.buff.WriteString("\x1b]8;;" + link + "\x1b\\")
		} else {
			s.buff.WriteString("\x1b]8;;\x1b\\")
		}
		s.lastLink = link
	}

	if params != s.lastParams {
		if s.lastParams != "" {
			s.buff.WriteString("\x1b[0m")
		}
		if params != "" {
			s.buff.WriteString("\x1b[" + params + "m")
		}
		s.lastParams = params
	}

	s.buff.WriteString(text)
	return nil
}

// sequenceFor computes the SGR parameter list and hyperlink target for a
// style. At LevelNone both are empty, stripping all styling.
func (s *renderState) sequenceFor(style Style) (string, string) {
	level := s.renderer.level
	if level == color.LevelNone {
		return "", ""
	}

	var params []string

	for cat := CategoryBold; cat <= CategoryOverline; cat++ {
		if style[cat].set {
			params = append(params, sgrCodes[cat])
		}
	}

	fg := style[CategoryForeground]
	bg := style[CategoryBackground]

	// Pick a readable foreground when only a background is set. Reverse
	// video swaps which color the text is actually drawn over, so the
	// decision looks at the displayed pair. Recomputed per span: the
	// background may change mid-document.
	displayedFg, displayedBg := fg, bg
	if style[CategoryReverse].set {
		displayedFg, displayedBg = bg, fg
	}
	if !displayedFg.set && displayedBg.set {
		picked := styleValue{set: true, color: displayedBg.color.Contrast()}
		if style[CategoryReverse].set {
			bg = picked
		} else {
			fg = picked
		}
	}

	if fg.set {
		params = append(params, fg.color.Downsample(level).Sequence(false))
	}
	if bg.set {
		params = append(params, bg.color.Downsample(level).Sequence(true))
	}

	link := ""
	if style[CategoryHyperlink].set {
		link = style[CategoryHyperlink].text
	}

	return strings.Join(params, ";"), link
}

// finish closes any trailing escape state
func (s *renderState) finish() {
	if s.lastParams != "" {
		s.buff.WriteString("\x1b[0m")
		s.lastParams = ""
	}
	if s.lastLink != "" {
		s.buff.WriteString("\x1b]8;;\x1b\\")
		s.lastLink = ""
	}
}

// withOffset attaches a byte offset to a markup error that lacks one
func withOffset(err error, offset int) error {
	if err == nil {
		return nil
	}

	if ze, ok := err.(*errors.ZenithError); ok {
		if _, has := ze.Details["offset"]; !has {
			return ze.WithOffset(offset)
		}
	}
	return err
}

// Render renders markup with the default context
func Render(input string, level color.Level) (string, error) {
	return NewRenderer(Default(), level).Render(input)
}
