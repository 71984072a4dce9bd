// Package emitter serializes a built catalog into the C tables the test harness links against.
package emitter

import (
	"bytes"
	"fmt"
	"io"

	"tcgen/internal/domain"
)

// Emitter writes a catalog artifact
type Emitter interface {
	Emit(w io.Writer, cat *domain.Catalog) error
}

// CEmitter writes the catalog as C declarations:
// forward declarations, test_catalog, one <P>_TESTS array per plugin and the testsuite registry.
type CEmitter struct {
	header string
}

// NewCEmitter creates a CEmitter that includes header at the top of the artifact
func NewCEmitter(header string) *CEmitter {
	return &CEmitter{header: header}
}

// Emit renders the whole artifact first and writes it with a single call,
// so nothing reaches w unless rendering completed.
func (e *CEmitter) Emit(w io.Writer, cat *domain.Catalog) error {
	data := e.Render(cat)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// Render returns the artifact text. Descriptions are copied verbatim.
func (e *CEmitter) Render(cat *domain.Catalog) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "#include \"%s\"\n", e.header)

	for _, fn := range cat.Functions() {
		fmt.Fprintf(&buf, "void test_%s(void);\n", fn)
	}

	buf.WriteString("struct testcase test_catalog[] = {\n")
	for _, tc := range cat.Cases {
		fmt.Fprintf(&buf, "\t{test_%s, \"%s\"},\n", tc.Function, tc.Description)
	}
	buf.WriteString("};\n")

	for _, s := range cat.Suites {
		fmt.Fprintf(&buf, "int %s_TESTS[] = {\n", s.Plugin)
		for _, id := range s.Tests {
			fmt.Fprintf(&buf, "\t%d,\n", id)
		}
		buf.WriteString("};\n")
		fmt.Fprintf(&buf, "#define NUM_%s_TESTS %d\n", s.Plugin, s.Count())
	}

	buf.WriteString("struct testsuite testsuite[] = {\n")
	for _, s := range cat.Suites {
		fmt.Fprintf(&buf, "\t{\"%s\", %s_TESTS, NUM_%s_TESTS},\n", s.DisplayName(), s.Plugin, s.Plugin)
	}
	buf.WriteString("};\n")
	fmt.Fprintf(&buf, "#define NUM_PLUGINS %d\n", len(cat.Suites))

	return buf.Bytes()
}
