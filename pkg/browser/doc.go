// Package browser owns the single managed browser session and the engines
// that operate on it: selector resolution, bounded-depth DOM exploration,
// polling waits, interaction, script evaluation, and telemetry capture.
//
// # Session lifecycle
//
// Exactly one browser and one page exist at any time. The Manager launches
// lazily on the first EnsureReady, detects asynchronous browser death, and
// performs exactly one automatic relaunch per EnsureReady on a crashed
// session. Restart unconditionally replaces the session and always lands in
// Ready or fails with SessionError.
//
//	Closed -> Launching -> Ready -> Crashed
//
// Every other component borrows the page transiently for the duration of one
// tool call; element handles are never persisted across calls.
//
// # Telemetry
//
// Console messages and network requests are captured into two independent
// bounded ring buffers. Capture runs on the driver's event goroutine and
// never takes the dispatcher's execution lock, so events keep flowing while
// a tool call is in flight. Buffers survive navigation and reload but are
// reset when the session is replaced.
//
// # Errors
//
// All failures carry a closed ErrorKind so the dispatcher can emit a uniform
// envelope. Classify maps anything unrecognized to Unknown.
package browser
