package driven

// IDGenerator produces unique document identifiers.
// Injected rather than called ambiently so tests can use a
// deterministic sequence.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}
