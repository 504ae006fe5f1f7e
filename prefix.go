package asn1types

// A TagMarker binds a Tag value at the type level. Go has no value-level
// generic parameters, so the declared tag of a prefix wrapper travels as a
// zero-sized marker type implementing this interface; the wrapper recovers
// the tag by instantiating the marker, which costs nothing at runtime.
//
// markers.go declares markers for the Context, Application, and Private
// numbers in everyday use. An exotic number mints its own marker in one
// line:
//
//	type context47 struct{}
//
//	func (context47) TagValue() asn1types.Tag { return asn1types.NewTag(asn1types.ClassContext, 47) }
//
// TagValue must behave as a constant: same tag on every call, no receiver
// dependence.
type TagMarker interface {
	TagValue() Tag
}

//go:generate go run internal/gen/gen_markers.go -o markers.go

// tagOf instantiates the marker and reads its tag.
func tagOf[T TagMarker]() Tag {
	var marker T
	return marker.TagValue()
}

// Implicit wraps an inner value and replaces its tag entirely: the wire
// identity of an Implicit[T, V] is T's tag and nothing else - the inner
// type's own tag plays no role. Use it to distinguish structurally identical
// fields by context tag:
//
//	type Lease struct {
//		asn1types.Sequence
//		NotBefore asn1types.Implicit[asn1types.Context0, asn1types.GeneralizedTime]
//		NotAfter  asn1types.Implicit[asn1types.Context1, asn1types.GeneralizedTime]
//	}
//
// The wrapper exclusively owns the value it carries and adds no state beyond
// it. Wrappers nest: each layer resolves its own tag independent of what it
// wraps, so re-tagging a wrapped value is just another wrapper.
//
// The inner type is deliberately unconstrained. Constraining V to AsnType
// would reject the plain Go types the TagOf table covers, and an implicit
// wrapper discards the inner tag anyway.
type Implicit[T TagMarker, V any] struct {
	Value V
}

// AsnTag returns the declared tag: the marker's tag, regardless of V.
func (Implicit[T, V]) AsnTag() Tag { return tagOf[T]() }

// Explicit wraps an inner value and layers its tag on top of the inner one:
// the wire identity of an Explicit[T, V] is T's tag, and the inner type's
// own tag remains meaningful as the identity of the nested payload. Use it
// when the original tag must survive inside a context or application
// wrapper - an explicitly tagged INTEGER is still visibly an INTEGER inside
// its wrapper.
//
// Like Implicit, the wrapper exclusively owns the value it carries, adds no
// state, and nests freely. The difference is observable only by the encoding
// collaborator, which asks for the retained identity through InnerTag.
type Explicit[T TagMarker, V any] struct {
	Value V
}

// AsnTag returns the declared tag: the marker's tag, regardless of V.
func (Explicit[T, V]) AsnTag() Tag { return tagOf[T]() }

// InnerTag resolves the retained tag of the wrapped value - the identity an
// engine encodes for the nested payload. It fails if V is not representable.
func (e Explicit[T, V]) InnerTag() (Tag, error) {
	return TagOf(e.Value)
}
