package ilpenc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteLP renders m in standard LP text format: a `\`-prefixed provenance
// header, Minimize/Subject To/Bounds/Binary/Generals/End sections, per
// spec.md §4.5/§6.
func WriteLP(w io.Writer, m *Model, header string) error {
	bw := bufio.NewWriter(w)

	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			fmt.Fprintf(bw, "\\ %s\n", line)
		}
	}

	bw.WriteString("Minimize\n obj: ")
	writeTerms(bw, m.Objective)
	bw.WriteString("\n")

	bw.WriteString("Subject To\n")
	for _, row := range m.Rows {
		fmt.Fprintf(bw, " %s: ", row.Name)
		writeTerms(bw, row.Terms)
		fmt.Fprintf(bw, " %s %d\n", row.Op, row.RHS)
	}

	if len(m.General) > 0 {
		bw.WriteString("Bounds\n")
		for _, b := range m.General {
			fmt.Fprintf(bw, " %d <= %s <= %d\n", b.LB, detectorVarName(b.Var), b.UB)
		}
	}

	if len(m.Binary) > 0 {
		bw.WriteString("Binary\n")
		for _, v := range m.Binary {
			fmt.Fprintf(bw, " %s\n", fireVarName(v))
		}
	}

	if len(m.General) > 0 {
		bw.WriteString("Generals\n")
		for _, b := range m.General {
			fmt.Fprintf(bw, " %s\n", detectorVarName(b.Var))
		}
	}

	bw.WriteString("End\n")
	return bw.Flush()
}

func writeTerms(bw *bufio.Writer, terms []Term) {
	for i, t := range terms {
		switch {
		case i == 0 && t.Coef < 0:
			fmt.Fprintf(bw, "- %s", t.Name)
		case i == 0:
			fmt.Fprintf(bw, "%s", t.Name)
		case t.Coef < 0:
			fmt.Fprintf(bw, " - %s", t.Name)
		default:
			fmt.Fprintf(bw, " + %s", t.Name)
		}
	}
}
