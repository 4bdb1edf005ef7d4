// Package browser implements the tool surface of the automation server:
// fourteen request/response operations over the single managed browser
// session.
//
// Each tool lives in its own file and follows the same shape: parse the JSON
// arguments, validate them before any side-effecting work, acquire the live
// page through the session manager, drive the matching engine component, and
// return a serializable result. Validation failures never reach the session.
//
// The tools are stateless; all session state lives in the engine's Manager.
// Serialization of calls is the dispatcher's job, so a tool may assume it has
// exclusive use of the page for the duration of one Execute.
package browser
