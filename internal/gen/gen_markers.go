// gen_markers.go generates the tag-marker declarations committed as
// markers.go in the package root.
//
// Usage:
//
//	go run internal/gen/gen_markers.go -o markers.go
//
// The generated ranges cover the tag numbers that occur in everyday modules.
// Extending a range here and regenerating is preferable to declaring one-off
// markers by hand when a whole family is missing.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

type family struct {
	// Go identifier prefix of the generated marker types.
	name string
	// Class constant the markers bind to.
	class string
	// Highest generated tag number, inclusive.
	max int
}

var families = []family{
	{name: "Context", class: "ClassContext", max: 30},
	{name: "Application", class: "ClassApplication", max: 15},
	{name: "Private", class: "ClassPrivate", max: 15},
}

func main() {
	out := flag.String("o", "markers.go", "output file name")
	flag.Parse()

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by internal/gen/gen_markers.go; DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package asn1types")
	for _, f := range families {
		for n := 0; n <= f.max; n++ {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "// %s%d marks the %s %d tag.\n", f.name, n, strings.ToUpper(f.name), n)
			fmt.Fprintf(&buf, "type %s%d struct{}\n", f.name, n)
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "func (%s%d) TagValue() Tag { return NewTag(%s, %d) }\n", f.name, n, f.class, n)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
