/*
Package intervalfile loads interval records from files into interval trees.

Two formats are supported. The line format holds one record per line:

	# start  length  label
	0        5       first
	3        5       second

Blank lines and lines starting with '#' are ignored; the label is optional and
may contain spaces. The YAML format holds a sequence of records:

	- start: 0
	  length: 5
	  label: first

Parsing runs in the background and broadcasts records to all subscribers,
one of which builds the tree. Clients may subscribe as well, e.g., to
report progress for large files. The API of Load is synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package intervalfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intervals'
func tracer() tracing.Trace {
	return tracing.Select("intervals")
}
