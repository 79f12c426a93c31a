/*
Package html maps the elements of an HTML fragment onto its inner text.

Every element covers a range of bytes of the inner text, i.e., of the text
resembling

	document.getElementById("myNode").innerText

in JavaScript. Element ranges are indexed in an interval tree, so that
clients may ask which elements enclose or overlap a selection of text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/intervals"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'intervals'
func tracer() tracing.Trace {
	return tracing.Select("intervals")
}

// Element is an HTML element together with the range of inner text it
// covers. Pos is the start byte offset within the inner text of the
// document, Len is the length of the element's inner text in bytes.
type Element struct {
	Node  *html.Node
	Pos   int
	Len   int
	Depth int // nesting depth, 0 for top-level elements
}

// Tag returns the tag name of the element.
func (e Element) Tag() string {
	return e.Node.Data
}

// Positions is the introspector for elements.
type Positions struct{}

// Start returns the start of an element's inner text.
func (Positions) Start(e Element) int { return e.Pos }

// Length returns the length of an element's inner text.
func (Positions) Length(e Element) int { return e.Len }

// Document is a parsed HTML fragment with an index of its elements.
type Document struct {
	nodes    []*html.Node
	text     string
	elements *intervals.Tree[Element, Positions]
}

// Parse reads an HTML fragment, as if it were the content of a <body>
// element, and indexes its elements.
func Parse(input io.Reader) (*Document, error) {
	if input == nil {
		return nil, errors.New("html: no input")
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, errors.Wrap(err, "html: cannot parse fragment")
	}
	c := &collector{}
	for _, n := range nodes {
		c.collect(n, 0)
	}
	doc := &Document{
		nodes: nodes,
		text:  c.text.String(),
		// elements are collected in document order, so enclosing elements
		// precede their first child in case of equal start
		elements: intervals.New(Positions{}, c.elements...),
	}
	tracer().Debugf("html: %d elements over %d bytes of text", doc.elements.Len(), len(doc.text))
	return doc, nil
}

// ParseString is a shortcut for Parse(strings.NewReader(s)).
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

type collector struct {
	text     strings.Builder
	elements []Element
}

func (c *collector) collect(n *html.Node, depth int) {
	switch n.Type {
	case html.TextNode:
		c.text.WriteString(n.Data)
		return
	case html.ElementNode:
		i := len(c.elements)
		c.elements = append(c.elements, Element{Node: n, Pos: c.text.Len(), Depth: depth})
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			c.collect(ch, depth+1)
		}
		c.elements[i].Len = c.text.Len() - c.elements[i].Pos
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, depth)
	}
}

// Nodes returns the top-level nodes of the fragment.
func (doc *Document) Nodes() []*html.Node {
	return doc.nodes
}

// InnerText returns the textual content of the fragment.
func (doc *Document) InnerText() string {
	return doc.text
}

// Elements returns all elements in document order.
func (doc *Document) Elements() []Element {
	return doc.elements.Values()
}

// Text returns the inner text of an element.
func (doc *Document) Text(e Element) string {
	return doc.text[e.Pos : e.Pos+e.Len]
}

// Enclosing returns the elements whose inner text contains the selection
// [from, to), outermost first. For an empty selection, elements enclosing
// position from are returned.
func (doc *Document) Enclosing(from, to int) []Element {
	if to < from {
		return nil
	}
	return doc.elements.Containing(from, to-from)
}

// Innermost returns the most deeply nested element enclosing the selection
// [from, to).
func (doc *Document) Innermost(from, to int) (Element, bool) {
	var inner Element
	found := false
	for _, e := range doc.Enclosing(from, to) {
		if !found || e.Depth > inner.Depth {
			inner, found = e, true
		}
	}
	return inner, found
}

// Overlapping returns the elements sharing text with the selection
// [from, to), in document order.
func (doc *Document) Overlapping(from, to int) []Element {
	if to < from {
		return nil
	}
	return doc.elements.Overlapping(from, to-from)
}

// HasElementAt reports whether position pos of the inner text belongs to an
// element, as opposed to top-level text.
func (doc *Document) HasElementAt(pos int) bool {
	return doc.elements.AnyContaining(pos, 0)
}
