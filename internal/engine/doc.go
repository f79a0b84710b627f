// Package engine turns request events into response events against an
// optional catalog connection.
//
// The engine is strictly request-at-a-time: Process runs one request to
// completion and returns every response it caused, in order. It owns the
// catalog connection, which moves between two states only:
//
//	Disconnected --OpenDatabase--> Connected --CloseDatabase--> Disconnected
//
// Re-opening while connected releases the old connection first. A failed
// open always leaves the engine Disconnected.
//
// No failure escapes Process. Store errors and panics inside a handler are
// converted to that handler's failure event.
package engine
