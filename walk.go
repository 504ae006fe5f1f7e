package asn1types

import "reflect"

// A Component is a node of a definition tree: a type reachable from a root
// definition, together with the tag it resolves to there.
type Component struct {
	// Name locates the component in its parent: the struct field name, or
	// "" for the root and for collection elements.
	Name string
	// Type is the component's Go type, pointers unwrapped.
	Type reflect.Type
	// Tag is the component's resolved tag (the sentinel for CHOICE and
	// open components).
	Tag Tag
}

// A Visitor defines a Visit method invoked for each Component encountered by
// Walk. If the result visitor w is not nil, Walk visits each child component
// of the node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node *Component) (w Visitor)
}

// Walk traverses the definition tree of the root type in depth-first order:
// the components of a struct definition are its exported fields (embedded
// markers aside), the components of a slice or array are its element, and
// the components of a map are its key and element, which is also how SetOf
// exposes its element type.
//
// Defined types own their layout below the component level: an
// ObjectIdentifier's arcs are not components, and neither are a BitString's
// octets. Unrepresentable children are not visited - they have no identity
// in the tree. Recursive definitions are visited once per occurrence but
// expanded only once per cycle.
//
// Codec engines traverse definitions this way to precompute dispatch before
// any value exists; all information here is type-level.
func Walk(v Visitor, root reflect.Type) {
	for root != nil && root.Kind() == reflect.Pointer {
		root = root.Elem()
	}
	if root == nil {
		return
	}
	tag, err := TagOfType(root)
	if err != nil {
		return
	}
	walk(v, &Component{Type: root, Tag: tag}, make(map[reflect.Type]bool))
}

// walk traverses the subtree of a single component: It starts by calling
// v.Visit(node). If the visitor w returned by v.Visit(node) is not nil, walk
// is invoked recursively with visitor w for each child component of the
// node, followed by a call of w.Visit(nil).
func walk(v Visitor, node *Component, expanding map[reflect.Type]bool) {
	// Start by calling v.Visit(node).
	if v = v.Visit(node); v == nil {
		return
	}
	// Then traverse the component's children, depth-first. A type already
	// being expanded higher up the path repeats as a node but is not
	// expanded again, so recursive definitions terminate.
	if !expanding[node.Type] {
		expanding[node.Type] = true
		for _, child := range componentsOf(node.Type) {
			walk(v, child, expanding)
		}
		delete(expanding, node.Type)
	}
	// Finally, call v.Visit(nil).
	v.Visit(nil)
}

type inspector func(node *Component) bool

func (f inspector) Visit(node *Component) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the definition tree of the root type in depth-first
// order: It starts by calling f(root). If f returns true, Inspect invokes f
// recursively for each child component of the node, followed by a call of
// f(nil).
func Inspect(root reflect.Type, f func(node *Component) bool) {
	Walk(inspector(f), root)
}

// Marker types embed into definitions to declare their tag; they are not
// components of the definition.
var markerTypes = map[reflect.Type]bool{
	reflect.TypeFor[Sequence](): true,
	reflect.TypeFor[Set]():      true,
	reflect.TypeFor[Choice]():   true,
}

// componentsOf lists the direct children of a component type. Children that
// do not resolve to a tag are omitted.
func componentsOf(t reflect.Type) []*Component {
	var children []*Component
	add := func(name string, ct reflect.Type) {
		for ct.Kind() == reflect.Pointer {
			ct = ct.Elem()
		}
		tag, err := TagOfType(ct)
		if err != nil {
			return
		}
		children = append(children, &Component{Name: name, Type: ct, Tag: tag})
	}

	if carrier, ok := reflect.Zero(t).Interface().(elementCarrier); ok {
		add("", carrier.elementType())
		return children
	}

	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Anonymous && markerTypes[f.Type] {
				continue
			}
			add(f.Name, f.Type)
		}
	case reflect.Slice:
		// Defined slice types (ObjectIdentifier) own their layout, and byte
		// slices are octet buffers; neither has element components.
		if t.Implements(asnTypeType) || reflect.PointerTo(t).Implements(asnTypeType) {
			break
		}
		if t.Elem().Kind() == reflect.Uint8 {
			break
		}
		add("", t.Elem())
	case reflect.Array:
		add("", t.Elem())
	case reflect.Map:
		add("", t.Key())
		add("", t.Elem())
	}
	return children
}
