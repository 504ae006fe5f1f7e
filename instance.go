package asn1types

import (
	"fmt"
	"reflect"
	"sync"
)

// InstanceOf pairs an object identifier naming an external type with a value
// of that type - ASN.1's EXTERNAL / INSTANCE OF construct. The pairing is
// bound to the Universal EXTERNAL tag, which is how X.681 expands INSTANCE
// OF on the wire.
//
// When the content type is known at compile time, T names it directly. When
// it is not - the usual case on the decode path, where only the TypeID says
// what the content is - the dynamic shape is InstanceOf[Open], and a
// TypeRegistry maps the TypeID to the Go type to materialise.
type InstanceOf[T any] struct {
	TypeID ObjectIdentifier
	Value  T
}

func (InstanceOf[T]) AsnTag() Tag { return TagExternal }

// A TypeRegistry maps object identifiers to the Go types they name, so that
// a decode engine encountering an InstanceOf can materialise the right
// content type for its TypeID. Encoding needs no registry - the TypeID
// travels with the value.
//
// The zero value is ready to use. A TypeRegistry is safe for concurrent use
// by multiple goroutines; decode paths resolve while registrations trickle
// in from init functions.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[ConstOID]reflect.Type
}

// Register associates id with prototype's type. The prototype value itself
// is discarded; only its type matters, and pointer prototypes register their
// element type.
//
// Registering the same id with the same type again has no effect.
// Registering it with a different type fails: an object identifier names
// exactly one type.
func (r *TypeRegistry) Register(id ObjectIdentifier, prototype any) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if prototype == nil {
		return fmt.Errorf("register %v: nil prototype", id)
	}
	if _, err := TagOf(prototype); err != nil {
		return fmt.Errorf("register %v: %w", id, err)
	}
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	key := ConstOID(id.String())
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.types[key]; ok {
		if existing == t {
			return nil
		}
		return fmt.Errorf("register %v: already names %v, cannot also name %v", id, existing, t)
	}
	if r.types == nil {
		r.types = make(map[ConstOID]reflect.Type)
	}
	r.types[key] = t
	return nil
}

// Resolve returns the Go type registered for id. The second result reports
// whether the identifier is known; resolution outcomes are metered, because
// an unknown external type is the one event of operational interest in this
// layer.
func (r *TypeRegistry) Resolve(id ObjectIdentifier) (reflect.Type, bool) {
	r.mu.RLock()
	t, ok := r.types[ConstOID(id.String())]
	r.mu.RUnlock()
	measureResolution(ok)
	return t, ok
}

// New returns a pointer to a fresh zero value of the type registered for id,
// ready for an engine to decode into. The second result reports whether the
// identifier is known.
func (r *TypeRegistry) New(id ObjectIdentifier) (any, bool) {
	t, ok := r.Resolve(id)
	if !ok {
		return nil, false
	}
	return reflect.New(t).Interface(), true
}

// Range calls fn for each registered pairing until fn returns false.
// Iteration order is unspecified. The registry may be modified concurrently;
// Range works on a snapshot taken when it starts.
func (r *TypeRegistry) Range(fn func(id ObjectIdentifier, t reflect.Type) bool) {
	r.mu.RLock()
	snapshot := make(map[ConstOID]reflect.Type, len(r.types))
	for k, v := range r.types {
		snapshot[k] = v
	}
	r.mu.RUnlock()

	for k, v := range snapshot {
		// Keys were validated by Register, so the constant-form accessor
		// cannot panic here.
		if !fn(k.ObjectIdentifier(), v) {
			return
		}
	}
}

// instanceTypes is the process-wide registry behind RegisterInstanceType and
// ResolveInstanceType.
var instanceTypes TypeRegistry

// RegisterInstanceType records id as naming prototype's type in the
// process-wide registry, panicking on conflict or invalid input - the same
// contract as gob.Register, and meant for the same call site: an init
// function next to the type definition.
//
// DO NOT forget to register your external types before decoding InstanceOf
// values that may name them.
func RegisterInstanceType(id ObjectIdentifier, prototype any) {
	if err := instanceTypes.Register(id, prototype); err != nil {
		panic(fmt.Sprintf("asn1types: %v", err))
	}
}

// ResolveInstanceType returns the Go type the process-wide registry has for
// id, and whether the identifier is known.
func ResolveInstanceType(id ObjectIdentifier) (reflect.Type, bool) {
	return instanceTypes.Resolve(id)
}

// NewInstanceValue returns a pointer to a fresh zero value of the type the
// process-wide registry has for id, and whether the identifier is known.
func NewInstanceValue(id ObjectIdentifier) (any, bool) {
	return instanceTypes.New(id)
}
