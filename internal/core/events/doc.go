// Package events defines the closed sets of request and response events
// exchanged between the interface layer and the engine.
//
// Both sets are sealed: only types in this package implement Request and
// Response, so a type switch over them can be checked for exhaustiveness.
package events
