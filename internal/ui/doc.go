// Package ui contains the Bubble Tea program that powers the playground
// frame. The Model type focuses on message orchestration while dedicated
// helpers own input routing, rendering, focus wiring, and the search
// overlay.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, window resizes, parse completions).
//   - Key handlers translate keystrokes into frame events; every frame
//     event goes through frame.Transition, the pure function that owns all
//     ordering, focus, and toggle decisions. The UI never mutates frame
//     state directly.
//   - Calldata edits queue asynchronous parses via internal/ui/command.Bus;
//     completions come back as command.Done messages and feed an
//     UpdateResult event. Stale completions still apply, last writer wins.
//
// Focus ownership:
//   - The transition function records focus intent (which block, and
//     whether the next render should move focus). Model.applyFocus is the
//     only place widget focus actually moves: it consumes the intent after
//     each event, skipping the very first render and any render while the
//     search overlay is active.
//   - handleFor hands a live focus handle to exactly one widget per render;
//     every other widget gets the inert zero handle.
//
// The command-reference overlay is owned by the host side of the model:
// the frame only emits a notify effect, and entering or leaving search
// mode feeds a dedicated transition so the frame can adjust its
// focus-on-render intent.
package ui
