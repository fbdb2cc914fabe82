package widgetdiff

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// TextTag is the type tag assigned to text nodes by FromHTML.
const TextTag TypeTag = "#text"

// FromHTML builds a diffable Node tree from markup, for callers whose
// widgets render to a DOM-like backend. Element tags become type tags, a
// "key" attribute (or failing that "id") becomes the explicit identity
// key, and the remaining attributes are fingerprinted into PropsHash.
// Text nodes get TextTag and a hash of their content; whitespace-only
// text is skipped. The returned root is the document body.
func FromHTML(content string) (*Node, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		return nil, fmt.Errorf("no body element in parsed document")
	}
	return fromElement(body), nil
}

func fromElement(el *html.Node) *Node {
	attrs := make(map[string]string, len(el.Attr))
	key := ""
	for _, a := range el.Attr {
		if a.Key == "key" {
			// Identity, not a rendered property.
			key = a.Val
			continue
		}
		attrs[a.Key] = a.Val
	}
	if key == "" {
		key = attrs["id"]
	}

	node := NewNode(TypeTag(el.Data), HashProps(attrs))
	if key != "" {
		node.WithKey(key)
	}

	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			node.AddChild(fromElement(c))
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			node.AddChild(NewNode(TextTag, HashString(c.Data)))
		}
	}
	return node
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
