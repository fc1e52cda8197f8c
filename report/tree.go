// ASCII tree rendering of load-group trees, with additivity and factors.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/structcalc/loadcomb/loadtree"
)

// Fprint renders the tree rooted at n to w, one node per line:
//
//	LRFD2-Live_Perm
//	├── Dead [additive] ×1.2
//	│   ├── DL ×1.2
//	│   └── SDL ×1.2
//	└── Live_Perm [additive] ×1.6
//	    └── LL ×1.6
//
// Groups show their additivity; every node shows its resolved factor when
// one exists.
func Fprint(w io.Writer, n *loadtree.Node) error {
	if n == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, label(n)); err != nil {
		return err
	}

	return printChildren(w, n, "")
}

func printChildren(w io.Writer, n *loadtree.Node, prefix string) error {
	children := n.Children()
	for i, c := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		if _, err := fmt.Fprintln(w, prefix+connector+label(c)); err != nil {
			return err
		}
		if err := printChildren(w, c, childPrefix); err != nil {
			return err
		}
	}

	return nil
}

func label(n *loadtree.Node) string {
	s := n.Name()
	if n.Additivity() != loadtree.AdditivityUnset {
		s += " [" + n.Additivity().String() + "]"
	}
	if f, ok := n.LoadFactor(); ok {
		s += " ×" + strconv.FormatFloat(f, 'g', -1, 64)
	}

	return s
}
