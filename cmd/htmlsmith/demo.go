package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmlsmith-dev/htmlsmith"
	"github.com/htmlsmith-dev/htmlsmith/el"
	"github.com/htmlsmith-dev/htmlsmith/internal/config"
)

func demoCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample page into the output directory",
		Long: `Generate a sample page showing the element builders.

The page is written to the configured output directory together with a
small stylesheet and logo, ready for 'htmlsmith serve'. Pass '-o -' to
write the page to stdout instead.

Examples:
  htmlsmith demo
  htmlsmith demo --out build
  htmlsmith demo -o -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory, or '-' for stdout (default from htmlsmith.yaml)")

	return cmd
}

func runDemo(out string) error {
	title := "htmlsmith"
	if out == "" || out == "-" {
		if cfg, err := config.LoadFromWorkingDir(); err == nil {
			if out == "" {
				out = cfg.OutputPath()
			}
			if cfg.Name != "" {
				title = cfg.Name
			}
		} else if out == "" {
			out = config.DefaultOutput
		}
	}

	doc := buildDemoPage(title)

	if out == "-" {
		return doc.Render(os.Stdout)
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}

	pagePath := filepath.Join(out, "index.html")
	f, err := os.Create(pagePath)
	if err != nil {
		return err
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(out, "style.css"), []byte(demoStylesheet), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "logo.svg"), []byte(demoLogo), 0644); err != nil {
		return err
	}

	success("Generated %s", pagePath)
	info("Run 'htmlsmith serve' to preview it")
	return nil
}

func buildDemoPage(title string) *htmlsmith.Document {
	doc := htmlsmith.NewDocument().
		Title(title).
		Charset("utf-8").
		Viewport().
		Stylesheet("style.css")

	doc.Body().Append(
		el.Header().Append(
			el.Img("logo.svg", title+" logo").Class("logo"),
			el.H1(title),
			el.P("Pages as plain Go values."),
		),
		el.Main().Append(
			textSection(),
			layoutSection(),
			tableSection(),
			formSection(),
		),
		el.Footer().Append(
			el.Small("Generated by htmlsmith "+version+" from "),
			el.A("https://github.com/htmlsmith-dev/htmlsmith", "plain Go"),
		),
	)

	return doc
}

func textSection() *htmlsmith.Element {
	return el.Section().ID("text").Append(
		el.H2("Text"),
		el.P("Inline content renders verbatim on a single line."),
		el.Blockquote("Markup is a pure function of the tree."),
		el.Ul().Append(
			el.Li("deterministic attribute order"),
			el.Li("two-space indentation"),
			el.Li("unescaped pass-through content"),
		),
		el.Details(true).Append(
			el.Summary("Void elements"),
			el.P("Elements without content or children self-close:"),
			el.Pre("<br/>"),
		),
	)
}

func layoutSection() *htmlsmith.Element {
	return el.Section().ID("layout").Append(
		el.H2("Layout"),
		el.Div().Class("grid").Append(
			el.Div().Class("cell").Append(
				el.H3("Nested"),
				el.P("Children indent one level per depth."),
			),
			el.Div().Class("cell").Append(
				el.H3("Composable"),
				el.P("Any subtree slots into any parent."),
			),
			el.Div().Class("cell").Append(
				el.H3("Deterministic"),
				el.P("The same tree always renders the same bytes."),
			),
		),
	)
}

func tableSection() *htmlsmith.Element {
	table := el.NewTable(
		el.Tr(el.Th("Builder"), el.Th("Accepts")),
		el.Tr(el.Td("Table"), el.Td("rows")),
		el.Tr(el.Td("Row"), el.Td("cells")),
		el.Tr(el.Td("Cell"), el.Td("anything")),
		el.Tr(el.Td("Shapes are checked at compile time.").ColSpan(2).Class("note")),
	).Class("demo")
	table.Elem().Append(el.Caption("The typed table builders"))

	return el.Section().ID("tables").Append(
		el.H2("Tables"),
		table,
	)
}

func formSection() *htmlsmith.Element {
	return el.Section().ID("forms").Append(
		el.H2("Forms"),
		el.Form("/subscribe").Append(
			el.Fieldset().Append(
				el.Legend("Subscribe"),
				el.Label("Name", "name"),
				el.InputText("name").ID("name").Placeholder("Ada Lovelace").Autofocus(),
				el.Label("Email", "email"),
				el.InputEmail("email").ID("email").Placeholder("you@example.com").Required(),
				el.Label("Updates per week", "cadence"),
				el.InputNumber("cadence", "1").ID("cadence").MinUint(1).MaxUint(7),
				el.Label("Starting", "start"),
				el.InputDate("start").ID("start"),
				el.Label("Format"),
				el.InputRadio("format", "html").Checked(),
				el.InputRadio("format", "text"),
				el.Label("Topics", "topics"),
				el.Select("topics").ID("topics").Append(
					el.NewOption("releases", "Releases").Selected(),
					el.NewOption("guides", "Guides"),
				),
				el.Label("Notes", "notes"),
				el.TextArea("notes", 40, 3).ID("notes"),
				el.InputCheckbox("digest").Checked(),
				el.Label("Bundle into a weekly digest"),
				el.InputSubmit("Sign up"),
			),
		),
	)
}

const demoStylesheet = `body {
  font-family: system-ui, sans-serif;
  max-width: 48rem;
  margin: 0 auto;
  padding: 2rem 1rem;
  line-height: 1.6;
}

header h1 {
  margin-bottom: 0;
}

header img.logo {
  width: 3rem;
  height: 3rem;
}

section {
  margin-top: 2.5rem;
}

.grid {
  display: grid;
  grid-template-columns: repeat(3, 1fr);
  gap: 1rem;
}

.grid .cell {
  border: 1px solid #eee;
  border-radius: 0.5rem;
  padding: 0 1rem;
}

table.demo {
  border-collapse: collapse;
}

table.demo caption {
  caption-side: bottom;
  font-size: 0.85rem;
  color: #666;
}

table.demo th,
table.demo td {
  border: 1px solid #ccc;
  padding: 0.4rem 0.8rem;
  text-align: left;
}

table.demo td.note {
  font-style: italic;
}

fieldset {
  border: 1px solid #ccc;
  padding: 1rem;
}

label {
  display: block;
  margin-top: 0.8rem;
}

footer {
  margin-top: 3rem;
  color: #666;
}
`

const demoLogo = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <rect x="6" y="10" width="52" height="44" rx="6" fill="#1f2937"/>
  <text x="32" y="40" font-family="monospace" font-size="22" fill="#f9fafb" text-anchor="middle">&lt;/&gt;</text>
</svg>
`