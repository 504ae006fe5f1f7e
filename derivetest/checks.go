package derivetest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-asn1types/go-asn1types"
)

// A check is any function that returns unexpected problems with the given
// [Case].
type check func(Case) (problem string)

// Checks that the definition declares exactly the expected tag.
//
// We resolve the declared tag through the same lookup every encoding engine
// uses, so a definition passing this check resolves identically in
// production.
func declares(want asn1types.Tag) check {
	return func(c Case) string {
		got, err := asn1types.TagOf(c.Value)
		if err != nil {
			return fmt.Sprintf("TagOf(%T): %v", c.Value, err)
		}
		if got != want {
			return fmt.Sprintf("TagOf(%T) = %v, want %v", c.Value, got, want)
		}
		return ""
	}
}

// Checks that every exported component of an aggregate definition is
// representable.
//
// Unexported fields are skipped: engines cannot reach them, so they carry no
// wire identity to get wrong.
func componentsRepresentable() check {
	return func(c Case) string {
		t, ok := structOf(c.Value)
		if !ok {
			return fmt.Sprintf("%T is not a struct definition", c.Value)
		}
		var problems []string
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if _, err := asn1types.TagOfType(f.Type); err != nil {
				problems = append(problems, fmt.Sprintf(".%s: %v", f.Name, err))
			}
		}
		return strings.Join(problems, "; ")
	}
}

// Checks that an aggregate definition is a structure, not a repetition: a
// SEQUENCE or SET struct lists heterogeneous components, so it must not
// report as an ordered element collection on the side.
func structureNotRepetition() check {
	return func(c Case) string {
		t := reflect.TypeOf(c.Value)
		if asn1types.SequenceOfType(t) {
			return fmt.Sprintf("%v reports as SEQUENCE OF; an aggregate lists components, a collection repeats one element", t)
		}
		return ""
	}
}

var choiceMarker = reflect.TypeFor[asn1types.Choice]()

// Checks that the alternatives of a CHOICE definition keep the construct
// decodable: each alternative is a pointer (so exactly one can be set), each
// resolves to a tag of its own, and no two alternatives share a tag.
//
// A shared tag would make the active alternative ambiguous on the wire; the
// fix is re-tagging one of the colliding alternatives.
func alternativesWellFormed() check {
	return func(c Case) string {
		t, ok := structOf(c.Value)
		if !ok {
			return fmt.Sprintf("%T is not a struct definition", c.Value)
		}
		var problems []string
		seen := make(map[asn1types.Tag]string)
		var alternatives int
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Anonymous && f.Type == choiceMarker {
				// The embedded marker declares the construct; it is not an
				// alternative.
				continue
			}
			alternatives++
			if f.Type.Kind() != reflect.Pointer {
				problems = append(problems, fmt.Sprintf(".%s: alternatives must be pointers so that exactly one is set at a time", f.Name))
				continue
			}
			tag, err := asn1types.TagOfType(f.Type)
			if err != nil {
				problems = append(problems, fmt.Sprintf(".%s: %v", f.Name, err))
				continue
			}
			if tag == asn1types.TagEndOfContents {
				problems = append(problems, fmt.Sprintf(".%s: the alternative has no tag of its own; wrap nested CHOICE and open alternatives in an explicit tag", f.Name))
				continue
			}
			if prev, dup := seen[tag]; dup {
				problems = append(problems, fmt.Sprintf(".%s: tag %v already taken by .%s; re-tag one of them", f.Name, tag, prev))
				continue
			}
			seen[tag] = f.Name
		}
		if alternatives == 0 {
			problems = append(problems, "no alternatives: a CHOICE needs at least one")
		}
		return strings.Join(problems, "; ")
	}
}

// Checks that a re-tagged definition left the UNIVERSAL class behind.
// Replacement tags come from the context, application, or private classes;
// the UNIVERSAL numbers belong to X.680.
func notUniversal() check {
	return func(c Case) string {
		got, err := asn1types.TagOf(c.Value)
		if err != nil {
			// declares() already reports unresolvable definitions.
			return ""
		}
		if got.Class() == asn1types.ClassUniversal {
			return fmt.Sprintf("declared tag %v is UNIVERSAL: re-tagged definitions use context, application or private tags", got)
		}
		return ""
	}
}

// Checks that an explicitly tagged definition's retained inner identity
// resolves. Implicit wrappers expose no inner identity and pass vacuously.
func innerResolvable() check {
	return func(c Case) string {
		wrapped, ok := c.Value.(interface {
			InnerTag() (asn1types.Tag, error)
		})
		if !ok {
			return ""
		}
		if _, err := wrapped.InnerTag(); err != nil {
			return fmt.Sprintf("InnerTag(): %v", err)
		}
		return ""
	}
}

func unknownCategory() check {
	return func(c Case) string {
		return fmt.Sprintf("category %v has no checks", c.Category)
	}
}

// structOf unwraps pointers and reports the underlying struct type of a
// definition, when it has one.
func structOf(v any) (reflect.Type, bool) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, true
}
