// Package types defines the shared types of the gestured configuration
// core: the GestureBinding record, the Store collaborator interface the
// loader feeds, and the FS abstraction used by filesystem-touching
// components.
package types
