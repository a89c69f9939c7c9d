package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// TestRenderedOutputParses feeds rendered markup through a real HTML parser
// and checks that the element structure survives the round trip.
func TestRenderedOutputParses(t *testing.T) {
	root := element.NewRoot()
	body := root.Children()[1]
	body.Append(
		element.New("h1", "Inventory"),
		element.New("ul").ID("items").Append(
			element.New("li", "bolts"),
			element.New("li", "nuts"),
		),
		element.New("img").SetAttr("src", "logo.png").SetAttr("alt", "logo"),
	)

	out := String(root)

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("rendered output failed to parse: %v", err)
	}

	counts := map[string]int{}
	var items *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
			if n.Data == "ul" {
				items = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	want := map[string]int{"html": 1, "head": 1, "body": 1, "h1": 1, "ul": 1, "li": 2, "img": 1}
	for tag, n := range want {
		if counts[tag] != n {
			t.Errorf("parsed %d <%s> elements, want %d", counts[tag], tag, n)
		}
	}

	if items == nil {
		t.Fatal("parsed output has no <ul>")
	}
	var id string
	for _, a := range items.Attr {
		if a.Key == "id" {
			id = a.Val
		}
	}
	if id != "items" {
		t.Errorf("ul id = %q, want %q", id, "items")
	}
}
