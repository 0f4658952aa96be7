package match

// Next advances the cursor to the following match. At the last match it
// wraps to the first when WrapAround is set, otherwise it stays put.
// No-op when there are no matches. Returns the new cursor position.
func (e *Engine) Next() int {
	if len(e.matches) == 0 {
		return -1
	}
	switch {
	case e.current < 0:
		e.current = 0
	case e.current >= len(e.matches)-1:
		if e.opts.WrapAround {
			e.current = 0
		} else {
			e.current = len(e.matches) - 1
		}
	default:
		e.current++
	}
	return e.current
}

// Previous moves the cursor to the preceding match, wrapping or clamping
// at the first match the same way Next does at the last.
func (e *Engine) Previous() int {
	if len(e.matches) == 0 {
		return -1
	}
	switch {
	case e.current < 0:
		e.current = len(e.matches) - 1
	case e.current == 0:
		if e.opts.WrapAround {
			e.current = len(e.matches) - 1
		}
	default:
		e.current--
	}
	return e.current
}
