package render

import (
	"fmt"
	"io"
	"testing"

	"github.com/htmlsmith-dev/htmlsmith/el"
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

func BenchmarkRenderSimple(b *testing.B) {
	renderer := NewRenderer(Config{})
	node := el.Div().Class("card").Append(
		el.H1("Title"),
		el.P("Content"),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderLargeTree(b *testing.B) {
	renderer := NewRenderer(Config{})

	// Build a list with 1000 items
	list := el.Ul()
	for i := 0; i < 1000; i++ {
		list.Append(el.Li(fmt.Sprintf("Item %d", i)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(list)
	}
}

func BenchmarkRenderToWriter(b *testing.B) {
	renderer := NewRenderer(Config{})
	node := el.Div().Class("card").Append(
		el.H1("Title"),
		el.P("Content"),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToWriter(io.Discard, node)
	}
}

func BenchmarkRenderDeepNesting(b *testing.B) {
	renderer := NewRenderer(Config{})

	// Build a deeply nested tree (20 levels)
	node := el.Span("Leaf")
	for i := 0; i < 20; i++ {
		node = el.Div().Append(node)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderManyAttributes(b *testing.B) {
	renderer := NewRenderer(Config{})

	node := el.Div().
		ID("main").
		Class("container primary active").
		SetAttr("data-id", "123").
		SetAttr("data-type", "content").
		SetAttr("data-status", "published").
		SetAttr("aria-label", "Main content").
		SetAttr("role", "main").
		SetAttr("tabindex", "0")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderComplexPage(b *testing.B) {
	renderer := NewRenderer(Config{})

	// Build a realistic page structure
	table := el.NewTable(
		el.Tr(el.Th("ID"), el.Th("Name"), el.Th("Email"), el.Th("Actions")),
	).Class("table")
	for i := 0; i < 50; i++ {
		table.Append(el.Tr(
			el.Td(fmt.Sprintf("%d", i+1)),
			el.Td(fmt.Sprintf("User %d", i)),
			el.Td(fmt.Sprintf("user%d@example.com", i)),
			el.Td().Append(el.A(fmt.Sprintf("/users/%d/edit", i), "Edit")),
		))
	}

	node := el.Div().Class("container").Append(
		el.Header().Append(
			el.Nav().Class("navbar").Append(
				el.A("/", "Home"),
				el.A("/about", "About"),
				el.A("/contact", "Contact"),
			),
		),
		el.Main().Append(
			el.H1("Users"),
			table,
		),
		el.Footer().Append(
			el.P("2024 htmlsmith"),
		),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}

func BenchmarkRenderText(b *testing.B) {
	renderer := NewRenderer(Config{})

	node := el.Div()
	for i := 0; i < 100; i++ {
		node.Append(element.Textf("Line %d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToString(node)
	}
}
