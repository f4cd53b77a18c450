// File: view.go
// Role: Non-mutating textual views of the graph for diagnostics.
package core

import (
	"strconv"
	"strings"
)

// String renders every slot and its edges, one vertex per line followed by
// its legs:
//
//	Vertex 0: MEL
//	-> LAX (5)
//
// Blank slots are printed without a code so the index space stays visible.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, se := range g.Edges() {
		sb.WriteString("Vertex ")
		sb.WriteString(strconv.Itoa(se.Index))
		sb.WriteByte(':')
		if se.Code != deletedSlot {
			sb.WriteByte(' ')
			sb.WriteString(se.Code)
		}
		sb.WriteByte('\n')
		for _, e := range se.Edges {
			sb.WriteString("-> ")
			sb.WriteString(e.To)
			sb.WriteString(" (")
			sb.WriteString(strconv.FormatInt(e.Weight, 10))
			sb.WriteString(")\n")
		}
	}

	return sb.String()
}
