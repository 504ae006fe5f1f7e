/*
Package derivetest provides a suite of checks designed to assess derived
ASN.1 type definitions (hand-written or generated).

The checks operate on values of the derived types through the
[asn1types.AsnType] contract and the [asn1types.TagOf] table to verify that
the definitions honour the tagging rules: aggregates declare the right tag,
every component is representable, and CHOICE alternatives stay
distinguishable.

Declare one case per derived type and call derivetest.Run in its own test:

	func TestDerivedTypes(t *testing.T) {
		derivetest.Run(t,
			derivetest.Sequence("certificate", Certificate{}),
			derivetest.Set("attributes", Attributes{}),
			derivetest.Choice("time", Time{}),
			derivetest.Tagged("version", Version{}, asn1types.NewTag(asn1types.ClassContext, 0)),
		)
	}

The cases in this suite focus on type-level properties only: tags, component
representability, and alternative distinctness. Whether a definition encodes
correctly is a property of an encoding engine and belongs to that engine's
own tests.
*/
package derivetest

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/go-asn1types/go-asn1types"
)

// A Category names the ASN.1 construct a derived type claims to be. It
// decides which contract checks apply to the case.
type Category int

const (
	// CategorySequence marks a derived SEQUENCE: a struct embedding
	// asn1types.Sequence with representable components.
	CategorySequence Category = iota
	// CategorySet marks a derived SET: a struct embedding asn1types.Set
	// with representable components.
	CategorySet
	// CategoryChoice marks a derived CHOICE: a struct embedding
	// asn1types.Choice whose alternatives are pointer fields with pairwise
	// distinct tags.
	CategoryChoice
	// CategoryTagged marks a re-tagged type: a definition whose declared
	// tag was replaced or wrapped, and must match the expected tag exactly.
	CategoryTagged
)

func (c Category) String() string {
	switch c {
	case CategorySequence:
		return "SEQUENCE"
	case CategorySet:
		return "SET"
	case CategoryChoice:
		return "CHOICE"
	case CategoryTagged:
		return "TAGGED"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// A Case pairs a value of a derived type with the category of checks it must
// satisfy. Build cases through the constructors - they record where in the
// suite's source each case was declared, which is what failure output points
// at.
type Case struct {
	// Subtest name.
	Name string
	// A value of the derived type under test. The zero value works: all
	// checks are type-level.
	Value any
	// The category deciding which checks apply.
	Category Category
	// The expected declared tag. Checked for CategoryTagged only; the
	// other categories imply their tag.
	Want asn1types.Tag

	// A path leading to the case's declaration in the source code.
	location string
}

// Sequence declares a case checking that value's type is a well-formed
// derived SEQUENCE.
func Sequence(name string, value any) Case {
	return Case{Name: name, Value: value, Category: CategorySequence, location: locateSource()}
}

// Set declares a case checking that value's type is a well-formed derived
// SET.
func Set(name string, value any) Case {
	return Case{Name: name, Value: value, Category: CategorySet, location: locateSource()}
}

// Choice declares a case checking that value's type is a well-formed derived
// CHOICE.
func Choice(name string, value any) Case {
	return Case{Name: name, Value: value, Category: CategoryChoice, location: locateSource()}
}

// Tagged declares a case checking that value's type declares exactly the
// given tag.
func Tagged(name string, value any, want asn1types.Tag) Case {
	return Case{Name: name, Value: value, Category: CategoryTagged, Want: want, location: locateSource()}
}

// Run executes the contract checks of every case as its own subtest.
//
// Cases are independent - unlike a stateful engine suite, a failing
// definition never poisons the next one - so each runs regardless of the
// others. The order of the cases is preserved anyway to keep failure output
// aligned with the declaration order in the caller's source.
func Run(t *testing.T, cases ...Case) {
	t.Helper()

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			// We encourage developers to read the definition under test
			// directly when a failure message is not clear enough.
			if c.location != "" {
				t.Logf("Read the declaration of case %v at %v", c.Name, c.location)
			}
			for _, check := range checksFor(c) {
				if problem := check(c); problem != "" {
					t.Errorf("Check %v definition of %v: %v", c.Category, c.Name, problem)
				}
			}
		})
	}
}

// checksFor maps a case's category to the contract checks that apply.
func checksFor(c Case) []check {
	switch c.Category {
	case CategorySequence:
		return []check{declares(asn1types.TagSequence), componentsRepresentable(), structureNotRepetition()}
	case CategorySet:
		return []check{declares(asn1types.TagSet), componentsRepresentable(), structureNotRepetition()}
	case CategoryChoice:
		return []check{declares(asn1types.TagEndOfContents), alternativesWellFormed()}
	case CategoryTagged:
		return []check{declares(c.Want), notUniversal(), innerResolvable()}
	}
	return []check{unknownCategory()}
}

// Call this function to set the location of a case in the source file. The
// returned string guides developers of derived types to the appropriate
// declaration.
func locateSource() (path string) {
	// Caller(2) skips this function and the Case constructor, landing on
	// the declaration site in the suite.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		panic("runtime.Caller failed")
	}
	return fmt.Sprintf("%v:%v", file, line)
}
