/*
Package spans indexes the segments of a text in an interval tree.

A text is split at line-break opportunities as defined by UAX#14. Each
segment records its byte range and its display width. Clients may then ask
which segments are hit by a byte range of the text (e.g., a selection), or
where to break the text into lines of a given width.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package spans

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intervals'
func tracer() tracing.Trace {
	return tracing.Select("intervals")
}
