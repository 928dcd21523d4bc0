// Package terminal feeds tcell screen events into an input map.
//
// Features:
//   - Background goroutine reading tcell.Screen.PollEvent into a buffered channel
//   - Non-blocking Poll returning normalized input events
//   - Key-hold emulation: terminals report no key releases, so a key stays down
//     until no repeat arrives within the hold timeout
//   - Mouse button masks to press/release, positions to cursor and motion deltas
//   - Wheel masks to scroll deltas, printable runes to typed text
//   - Focus loss releases everything held
//
// Typical frame loop:
//
//	src := terminal.NewSource(screen, terminal.WithLogger(log))
//	src.Start()
//	defer src.Stop()
//	for {
//		m.Poll(src)
//		// queries
//		m.ResetFrame()
//	}
package terminal
