package types

// GestureBinding is one (application, gesture, action, settings) record
// produced by parsing the configuration document. Attribute values are kept
// as raw strings; interpreting gesture types, finger counts and directions
// is the consumer's job, not the parser's.
type GestureBinding struct {
	// Application is a single application identifier. A config entry
	// listing several comma-separated applications fans out into one
	// binding per identifier.
	Application string

	// GestureType is the raw gesture tag, e.g. "SWIPE" or "PINCH".
	GestureType string

	// Fingers is the raw finger-count attribute, left unparsed.
	Fingers string

	// Direction is the raw direction tag, e.g. "LEFT" or "UP".
	Direction string

	// ActionType names the action to execute when the gesture matches.
	ActionType string

	// ActionSettings maps setting name to setting value. Keys are unique;
	// a repeated setting name keeps only the last occurrence.
	ActionSettings map[string]string
}

// Store receives gesture bindings from the configuration loader. The loader
// only ever appends and clears; it never reads bindings back. Implementations
// must be safe for concurrent use, since reloads happen on the watcher
// goroutine while consumers read.
type Store interface {
	// SaveGestureConfig registers one gesture binding.
	SaveGestureConfig(application, gestureType, fingers, direction, actionType string, settings map[string]string)

	// Clear removes every binding previously saved.
	Clear()
}
