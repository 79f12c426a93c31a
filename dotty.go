package intervals

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[V any, I Introspector[V]] struct {
	idTable map[*node[V, I]]int
	max     int
}

func newtable[V any, I Introspector[V]]() nodeids[V, I] {
	return nodeids[V, I]{
		idTable: make(map[*node[V, I]]int),
		max:     1,
	}
}

func (ids nodeids[V, I]) find(n *node[V, I]) int {
	return ids.idTable[n]
}

func (ids *nodeids[V, I]) alloc(n *node[V, I]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.fresh()
	return ids.idTable[n]
}

// fresh returns an id not used by any other node or placeholder.
func (ids *nodeids[V, I]) fresh() int {
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Every node is labeled with its interval, its
// height and the greatest end of its subtree.
func Tree2Dot[V any, I Introspector[V]](tree *Tree[V, I], w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		return err
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if !tree.IsEmpty() {
		ids := newtable[V, I]()
		var nodelist, edgelist strings.Builder
		var walk func(n *node[V, I])
		walk = func(n *node[V, I]) {
			ID := ids.alloc(n)
			start := tree.in.Start(n.value)
			label := fmt.Sprintf("[%d,%d)\\nh=%d max=%d", start, tree.endOf(n), n.height,
				tree.endOf(n.maxEnd))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
			for _, child := range [...]*node[V, I]{n.left, n.right} {
				if child == nil {
					nilid := ids.fresh()
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				walk(child)
			}
		}
		walk(tree.root)
		io.WriteString(w, nodelist.String())
		io.WriteString(w, edgelist.String())
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[V any, I Introspector[V]](n *node[V, I]) string {
	s := ",style=filled,shape=box"
	if n.maxEnd == n {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
