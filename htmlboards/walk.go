package htmlboards

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type matcher func(*html.Node) bool

func isAtom(atoms ...atom.Atom) matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && slices.Contains(atoms, n.DataAtom)
	}
}

func hasClass(class string) matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "class" {
				return slices.Contains(strings.Fields(a.Val), class)
			}
		}
		return false
	}
}

// walk visits the descendants of root (not root itself) in document order.
// It uses an explicit stack so deeply nested markup cannot exhaust the
// goroutine stack. Returning false from visit skips the node's children.
func walk(root *html.Node, visit func(*html.Node) bool) {
	var stack []*html.Node
	pushChildren := func(n *html.Node) {
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	pushChildren(root)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visit(n) {
			pushChildren(n)
		}
	}
}

func findAll(root *html.Node, match matcher) []*html.Node {
	var found []*html.Node
	walk(root, func(n *html.Node) bool {
		if match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

func findFirst(root *html.Node, match matcher) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// textContent concatenates the text nodes below n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// ExtractText returns the text below n with a line break in front of
// every br, p, div and li element, so list markup turns into lines.
func ExtractText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		switch c.Type {
		case html.ElementNode:
			switch c.DataAtom {
			case atom.Br, atom.P, atom.Div, atom.Li:
				sb.WriteByte('\n')
			}
		case html.TextNode:
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}
