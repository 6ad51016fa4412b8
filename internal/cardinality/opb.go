package cardinality

import (
	"fmt"
	"strings"
)

// writeOPB renders a single pseudo-Boolean cardinality constraint over the
// pblib-local variable indices 1..len(vars) (vars already sorted), in the
// OPB format the external encoder binary expects. This mirrors
// identifying_codes.py's cardinality_constraint() line-for-line: one
// comment preamble plus one constraint line.
func writeOPB(nVars int, bound Bound) string {
	var b strings.Builder
	fmt.Fprintf(&b, "* #variable= %d #constraint= 1\n", nVars)
	b.WriteString("* \n")

	switch bound.Kind {
	case AtMost:
		for i := 1; i <= nVars; i++ {
			fmt.Fprintf(&b, "-1 x%d ", i)
		}
		fmt.Fprintf(&b, ">= %d;\n", -bound.Value)
	case AtLeast:
		for i := 1; i <= nVars; i++ {
			fmt.Fprintf(&b, "+1 x%d ", i)
		}
		fmt.Fprintf(&b, ">= %d;\n", bound.Value)
	default: // Equal
		for i := 1; i <= nVars; i++ {
			fmt.Fprintf(&b, "+1 x%d ", i)
		}
		fmt.Fprintf(&b, "= %d;\n", bound.Value)
	}
	return b.String()
}
