package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// collapseText returns the selection's text content with runs of
// whitespace collapsed to single spaces.
func collapseText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// ownText returns the selection's text content excluding any nested
// <label> subtrees. Quiz Maker nests labels inside answer labels for
// image captions, and caption text is not part of the option.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		collectText(node, node, &b)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(root, n *html.Node, b *strings.Builder) {
	if n != root && n.Type == html.ElementNode && n.DataAtom == atom.Label {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(root, c, b)
	}
}
