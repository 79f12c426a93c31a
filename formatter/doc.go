/*
Package formatter renders the intervals of a tree on a console with a
fixed-width font.

Every value of the tree is printed as one row of a bar chart, in order of
ascending start positions. Rows carry a label, and bars are scaled to fit the
configured line width. Values selected by a client-supplied predicate, usually
the result of a query, are highlighted.

	tree, _ := intervalfile.Load("records.txt")
	hits := tree.Overlapping(10, 5)
	formatter.Print(tree, formatter.Chart[intervalfile.Record]{
		Label: func(r intervalfile.Record) string { return r.Label },
		Hit:   func(r intervalfile.Record) bool { return slices.Contains(hits, r) },
	}, nil)

Label widths are measured in display positions (“en”s) according to UAX#11,
so labels containing East Asian wide characters line up correctly.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intervals'
func tracer() tracing.Trace {
	return tracing.Select("intervals")
}
