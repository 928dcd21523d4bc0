package input

// ResetFrame ends the frame. Call it once per frame after all queries.
//
// Held codes (keys, buttons, gamepad axes) keep their current strength so a
// key held across frames stays pressing without repeat events. Motion and
// scroll codes drop to zero since they measure movement since the last reset.
// Both record the current strength as the previous one for edge detection.
func (m *Map[A]) ResetFrame() {
	m.state.advance()
	m.recent = Code{}
	m.hasRecent = false
	m.text.Reset()
}

// ResetFrameRecenter is ResetFrame plus a cursor recentre request to the
// window collaborator, for relative-look cameras
func (m *Map[A]) ResetFrameRecenter() {
	m.ResetFrame()
	if m.recenterer != nil {
		m.recenterer.RecenterCursor()
	}
}

// ClearState forgets all raw input, e.g. when the window loses focus.
// Actions held before the call will not report Released.
func (m *Map[A]) ClearState() {
	m.state.Reset()
	m.recent = Code{}
	m.hasRecent = false
	m.text.Reset()
}
