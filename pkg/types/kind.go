package types

// Kind is the serialize/deserialize behavior for one value type, scalar or
// composite. Implementations are stateless apart from construction
// parameters such as bounds or element kinds.
type Kind[T any] interface {
	// Signature identifies the kind, including element kinds for composites
	// (for example "list<int>"). Descriptors with the same name and
	// signature are interchangeable.
	Signature() string

	// Zero returns the kind's own default, used for composite elements that
	// fail to decode.
	Zero() T

	// Serialize renders v as text. It never fails.
	Serialize(v T) string

	// Deserialize parses s. It never fails: unparsable input yields fallback,
	// a clamped value, or skipped fragments.
	Deserialize(s string, fallback T) T
}
