package wavl

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with key, rank and subtree
// size, edges with rank differences. External nodes are drawn as small
// empty circles.
func Tree2Dot[K, V any](tree *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	if !tree.IsEmpty() {
		tree.each(func(x ref, _ int) bool {
			n := tree.nodes[x]
			ID := int(x) + 1
			label := fmt.Sprintf("%v\\nr=%d s=%d", n.key, n.rank, n.size)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.rank))
			dl, dr := tree.diffs(x)
			for i, child := range [2]ref{n.left, n.right} {
				diff := dl
				if i == 1 {
					diff = dr
				}
				if child == none {
					nilid := fmt.Sprintf("ext%d_%d", ID, i)
					nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
					edgelist += fmt.Sprintf("\"%d\" -> \"%s\" [label=%d];\n", ID, nilid, diff)
				} else {
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=%d%s];\n", ID, int(child)+1, diff, edgeDotStyles(diff))
				}
			}
			return true
		})
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(rank int) string {
	s := ",style=filled,color=black,shape=box"
	if rank < len(hexcolors) {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[rank])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[len(hexcolors)-1])
	}
	return s
}

func edgeDotStyles(diff int) string {
	if diff == 2 {
		return ",style=dashed"
	}
	return ""
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
