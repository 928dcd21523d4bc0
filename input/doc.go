// Package input resolves raw device input into user-defined actions with a
// continuous strength in [0,1].
//
// Features:
//   - One Code type covering keys, mouse buttons, mouse motion, scroll,
//     gamepad buttons and signed halves of gamepad axes
//   - Many-to-many bindings between codes and any comparable action type
//   - Max-combination of alternate bindings, so keyboard and gamepad can drive
//     the same action without interfering
//   - Edge detection (Pressed/Released) from strength across frames
//   - Axis and Dir arithmetic over opposing actions
//   - Binding files in TOML or YAML, mergeable over built-in defaults
//
// A Map is owned by one frame loop. Events are ingested first, then queried,
// then ResetFrame is called once the frame is done with input:
//
//	m, err := input.New([]input.Binding[Action]{
//	    input.NewBinding(Jump, input.KeyCode(input.KeySpace), input.GamepadButtonCode(input.GamepadSouth)),
//	    input.NewBinding(Left, input.KeyCode(input.KeyA), input.LeftStickLeft),
//	    input.NewBinding(Right, input.KeyCode(input.KeyD), input.LeftStickRight),
//	})
//
//	for running {
//	    m.Poll(sources...)
//	    if m.Pressed(Jump) { ... }
//	    move := m.Axis(Right, Left)
//	    m.ResetFrame()
//	}
//
// Nothing in this package is safe for concurrent use. Queries and ingestion
// never fail: unknown codes and unbound actions read as zero.
package input
