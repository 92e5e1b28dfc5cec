/*
Package html converts between WAVL trees and HTML definition lists.

A tree is represented as

	<dl class="wavl">
	  <dt>key</dt><dd>value</dd>
	  …
	</dl>

with entries in key order.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wavl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'wavl'
func tracer() tracing.Trace {
	return tracing.Select("wavl")
}

// Render writes the entries of tree as an HTML definition list to w.
// Keys and values are formatted with fmt's %v verb and HTML-escaped.
func Render[K, V any](tree *wavl.Tree[K, V], w io.Writer) error {
	if w == nil {
		return wavl.ErrIllegalArguments
	}
	dl := element(atom.Dl)
	dl.Attr = []html.Attribute{{Key: "class", Val: "wavl"}}
	tree.ForEach(func(k K, v V) bool {
		dt := element(atom.Dt)
		dt.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(k)})
		dd := element(atom.Dd)
		dd.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v)})
		dl.AppendChild(dt)
		dl.AppendChild(dd)
		return true
	})
	return html.Render(w, dl)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// TreeFromHTML creates a tree from the definition lists of an HTML fragment.
// Every <dt> element contributes a key, the text of an immediately
// following <dd> element the corresponding value. Keys are the trimmed inner
// text of <dt> elements. A key occurring twice results in an error wrapping
// wavl.ErrDuplicateKey.
func TreeFromHTML(input io.Reader) (*wavl.Tree[string, string], error) {
	body := element(atom.Body)
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	tree := wavl.NewOrdered[string, string]()
	for _, n := range nodes {
		if err := collectEntries(n, tree); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("html: collected %d entries", tree.Size())
	return tree, nil
}

func collectEntries(n *html.Node, tree *wavl.Tree[string, string]) error {
	if n.Type == html.ElementNode && n.DataAtom == atom.Dt {
		key := strings.TrimSpace(InnerText(n))
		value := ""
		if dd := nextElement(n); dd != nil && dd.DataAtom == atom.Dd {
			value = strings.TrimSpace(InnerText(dd))
		}
		if _, err := tree.Insert(key, value); err != nil {
			return fmt.Errorf("html: key %q: %w", key, err)
		}
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectEntries(c, tree); err != nil {
			return err
		}
	}
	return nil
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, without respect to CSS visibility.
func InnerText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
