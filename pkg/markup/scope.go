package markup

// scopeFrame records what one open tag changed: the prior value of every
// category it touched, and the ids of any macros it activated. Closing
// restores the prior values instead of clearing, so sibling tags earlier
// in the same scope keep the categories they set.
type scopeFrame struct {
	prior  map[Category]styleValue
	macros []int
}

// scopeStack maintains the nesting of open tags and the currently
// effective style.
type scopeStack struct {
	style  Style
	frames []*scopeFrame
}

func newScopeStack() *scopeStack {
	return &scopeStack{}
}

// open applies a delta, snapshotting the prior value of every touched
// category into a new frame. Frames carrying neither style changes nor
// macros are not pushed.
func (s *scopeStack) open(delta Delta, macroIDs []int) {
	if len(delta) == 0 && len(macroIDs) == 0 {
		return
	}

	frame := &scopeFrame{
		prior:  make(map[Category]styleValue, len(delta)),
		macros: macroIDs,
	}

	for cat, value := range delta {
		frame.prior[cat] = s.style[cat]
		s.style[cat] = value
	}

	s.frames = append(s.frames, frame)
}

// closeTop pops the topmost frame, restoring every category it touched.
// Returns the ids of macros the frame had activated, and false when the
// stack was already empty.
func (s *scopeStack) closeTop() ([]int, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}

	frame := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]

	for cat, prior := range frame.prior {
		s.style[cat] = prior
	}

	return frame.macros, true
}

// closeCategory restores the prior value of one category from the most
// recent frame that touched it, removing the entry from that frame. A
// frame left empty is dropped. Closing a category no open frame touched
// is a no-op.
func (s *scopeStack) closeCategory(cat Category) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		frame := s.frames[i]

		prior, touched := frame.prior[cat]
		if !touched {
			continue
		}

		s.style[cat] = prior
		delete(frame.prior, cat)

		if len(frame.prior) == 0 && len(frame.macros) == 0 {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
		}
		return
	}
}

// releaseMacro removes a macro id from whichever frame holds it, dropping
// the frame if that leaves it empty. Used when a macro is unset explicitly
// rather than by its frame closing.
func (s *scopeStack) releaseMacro(id int) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		frame := s.frames[i]
		for j, m := range frame.macros {
			if m != id {
				continue
			}
			frame.macros = append(frame.macros[:j], frame.macros[j+1:]...)
			if len(frame.prior) == 0 && len(frame.macros) == 0 {
				s.frames = append(s.frames[:i], s.frames[i+1:]...)
			}
			return
		}
	}
}

// depth returns the number of open frames
func (s *scopeStack) depth() int {
	return len(s.frames)
}

// unwind closes every remaining frame, returning all macro ids released.
// Used for the implicit close at end of input.
func (s *scopeStack) unwind() []int {
	var released []int
	for {
		macros, ok := s.closeTop()
		if !ok {
			return released
		}
		released = append(released, macros...)
	}
}
