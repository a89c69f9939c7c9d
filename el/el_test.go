package el

import (
	"testing"

	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
	"github.com/htmlsmith-dev/htmlsmith/pkg/render"
)

func TestFactoryTags(t *testing.T) {
	tests := []struct {
		name string
		elem *element.Element
		want string
	}{
		{"Body", Body(), "body"},
		{"Header", Header(), "header"},
		{"Footer", Footer(), "footer"},
		{"Nav", Nav(), "nav"},
		{"Main", Main(), "main"},
		{"Section", Section(), "section"},
		{"Article", Article(), "article"},
		{"Aside", Aside(), "aside"},
		{"Div", Div(), "div"},
		{"P", P(), "p"},
		{"Span", Span(), "span"},
		{"H1", H1(), "h1"},
		{"H6", H6(), "h6"},
		{"Pre", Pre(), "pre"},
		{"Code", Code(), "code"},
		{"Blockquote", Blockquote(), "blockquote"},
		{"Br", Br(), "br"},
		{"Hr", Hr(), "hr"},
		{"B", B(), "b"},
		{"I", I(), "i"},
		{"Strong", Strong(), "strong"},
		{"Em", Em(), "em"},
		{"Small", Small(), "small"},
		{"Mark", Mark(), "mark"},
		{"Figure", Figure(), "figure"},
		{"FigCaption", FigCaption(), "figcaption"},
		{"Ul", Ul(), "ul"},
		{"Ol", Ol(), "ol"},
		{"Li", Li(), "li"},
		{"Caption", Caption(), "caption"},
		{"Details", Details(), "details"},
		{"Summary", Summary(), "summary"},
		{"Form", Form(), "form"},
		{"Fieldset", Fieldset(), "fieldset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.Tag(); got != tt.want {
				t.Errorf("tag = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentFactories(t *testing.T) {
	if got := P("hello").Content(); got != "hello" {
		t.Errorf("P content = %q, want %q", got, "hello")
	}
	if got := Div().Content(); got != "" {
		t.Errorf("Div() content = %q, want empty", got)
	}
}

func TestPresetAttributes(t *testing.T) {
	tests := []struct {
		name string
		elem *element.Element
		attr string
		want string
	}{
		{"A href", A("/docs", "Docs"), "href", "/docs"},
		{"Img src", Img("logo.png", "Logo"), "src", "logo.png"},
		{"Img alt", Img("logo.png", "Logo"), "alt", "Logo"},
		{"Time datetime", Time("today", "2026-08-25"), "datetime", "2026-08-25"},
		{"Form action", Form("/submit"), "action", "/submit"},
		{"Label for", Label("Name", "name"), "for", "name"},
		{"Select name", Select("metal"), "name", "metal"},
		{"DataList id", DataList("metals"), "id", "metals"},
		{"TextArea name", TextArea("notes", 40, 5), "name", "notes"},
		{"TextArea cols", TextArea("notes", 40, 5), "cols", "40"},
		{"TextArea rows", TextArea("notes", 40, 5), "rows", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.elem.Attr(tt.attr)
			if !ok {
				t.Fatalf("attribute %q not set", tt.attr)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.attr, got, tt.want)
			}
		})
	}

	if _, ok := Form().Attr("action"); ok {
		t.Error("Form() without action should not set the attribute")
	}
	if _, ok := TextArea("n", 0, 0).Attr("cols"); ok {
		t.Error("TextArea with zero cols should not set the attribute")
	}
}

func TestForceClosingPresets(t *testing.T) {
	tests := []struct {
		name string
		elem *element.Element
		want string
	}{
		{"empty td", Td().Elem(), "<td></td>\n"},
		{"empty th", Th().Elem(), "<th></th>\n"},
		{"empty textarea", TextArea("notes", 0, 0), "<textarea name=\"notes\"></textarea>\n"},
		{"empty option", NewOption("x").Elem(), "<option value=\"x\"></option>\n"},
		{"empty button", Button(""), "<button></button>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render.String(tt.elem); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadBuilder(t *testing.T) {
	head := NewHead().Append(
		Title("Site"),
		MetaCharset("utf-8"),
		Stylesheet("main.css"),
	)

	kids := head.Elem().Children()
	if len(kids) != 3 {
		t.Fatalf("head children = %d, want 3", len(kids))
	}
	wantTags := []string{"title", "meta", "link"}
	for i, tag := range wantTags {
		if kids[i].Tag() != tag {
			t.Errorf("head child %d tag = %q, want %q", i, kids[i].Tag(), tag)
		}
	}

	link := kids[2]
	for attr, want := range map[string]string{
		"rel":  "stylesheet",
		"href": "main.css",
		"type": "text/css",
	} {
		if got, _ := link.Attr(attr); got != want {
			t.Errorf("stylesheet %s = %q, want %q", attr, got, want)
		}
	}
}

func TestHeadItemFactories(t *testing.T) {
	tests := []struct {
		name string
		item HeadItem
		want string
	}{
		{"Title", Title("T"), "<title>T</title>\n"},
		{"Style", Style("body { margin: 0 }"), "<style>body { margin: 0 }</style>\n"},
		{"Script", Script("app.js"), "<script src=\"app.js\"></script>\n"},
		{"ScriptInline", ScriptInline("init()"), "<script>init()</script>\n"},
		{"Meta", Meta("author", "smith"), "<meta content=\"smith\" name=\"author\"/>\n"},
		{"MetaCharset", MetaCharset("utf-8"), "<meta charset=\"utf-8\"/>\n"},
		{"Base", Base("/app/", "_blank"), "<base href=\"/app/\" target=\"_blank\"/>\n"},
		{"LinkRel", LinkRel("icon", "favicon.ico"), "<link href=\"favicon.ico\" rel=\"icon\"/>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render.String(tt.item.Elem()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableBuilder(t *testing.T) {
	table := NewTable(
		Tr(Th("A"), Th("B")),
		Tr(Td("1"), Td("2")),
	).Class("grid")

	want := "<table class=\"grid\">\n" +
		"  <tr>\n" +
		"    <th>A</th>\n" +
		"    <th>B</th>\n" +
		"  </tr>\n" +
		"  <tr>\n" +
		"    <td>1</td>\n" +
		"    <td>2</td>\n" +
		"  </tr>\n" +
		"</table>\n"
	if got := render.String(table.Elem()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCellSpans(t *testing.T) {
	cell := Td("wide").ColSpan(3).RowSpan(0)

	if got, _ := cell.Elem().Attr("colspan"); got != "3" {
		t.Errorf("colspan = %q, want %q", got, "3")
	}
	if _, ok := cell.Elem().Attr("rowspan"); ok {
		t.Error("RowSpan(0) should not set the attribute")
	}
}

func TestInputFactories(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantType string
	}{
		{"text", InputText("q"), "text"},
		{"password", InputPassword("pw"), "password"},
		{"number", InputNumber("qty"), "number"},
		{"range", InputRange("level"), "range"},
		{"radio", InputRadio("pick"), "radio"},
		{"checkbox", InputCheckbox("agree"), "checkbox"},
		{"date", InputDate("when"), "date"},
		{"time", InputTime("at"), "time"},
		{"email", InputEmail("mail"), "email"},
		{"url", InputURL("site"), "url"},
		{"hidden", InputHidden("token", "abc"), "hidden"},
		{"submit", InputSubmit("Go"), "submit"},
		{"reset", InputReset(), "reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := tt.input.Elem().Attr("type"); got != tt.wantType {
				t.Errorf("type = %q, want %q", got, tt.wantType)
			}
		})
	}

	list := InputList("metal", "metals")
	if _, ok := list.Elem().Attr("type"); ok {
		t.Error("InputList should not set a type attribute")
	}
	if got, _ := list.Elem().Attr("list"); got != "metals" {
		t.Errorf("list = %q, want %q", got, "metals")
	}
}

func TestInputFluentHelpers(t *testing.T) {
	in := InputText("q", "hi").Placeholder("Search").Size(24).Required()

	want := "<input name=\"q\" placeholder=\"Search\" required size=\"24\" type=\"text\" value=\"hi\"/>\n"
	if got := render.String(in.Elem()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInputBooleanHelpers(t *testing.T) {
	in := InputCheckbox("agree").Checked().Disabled().ReadOnly().Autofocus().Autocomplete()

	for _, attr := range []string{"checked", "disabled", "readonly", "autofocus", "autocomplete"} {
		v, ok := in.Elem().Attr(attr)
		if !ok {
			t.Errorf("%s not set", attr)
			continue
		}
		if v != "" {
			t.Errorf("%s = %q, want empty (bare attribute)", attr, v)
		}
	}
}

func TestInputMinMax(t *testing.T) {
	num := InputNumber("qty").MinUint(1).MaxUint(99)
	if got, _ := num.Elem().Attr("min"); got != "1" {
		t.Errorf("min = %q, want %q", got, "1")
	}
	if got, _ := num.Elem().Attr("max"); got != "99" {
		t.Errorf("max = %q, want %q", got, "99")
	}

	date := InputDate("when").Min("2026-01-01").Max("2026-12-31")
	if got, _ := date.Elem().Attr("min"); got != "2026-01-01" {
		t.Errorf("min = %q, want %q", got, "2026-01-01")
	}
}

func TestOptionSelected(t *testing.T) {
	sel := Select("metal").Append(
		NewOption("au", "Gold").Selected(),
		NewOption("ag", "Silver"),
	)

	want := "<select name=\"metal\">\n" +
		"  <option selected value=\"au\">Gold</option>\n" +
		"  <option value=\"ag\">Silver</option>\n" +
		"</select>\n"
	if got := render.String(sel); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDetailsOpen(t *testing.T) {
	if _, ok := Details().Attr("open"); ok {
		t.Error("Details() should be closed by default")
	}
	v, ok := Details(true).Attr("open")
	if !ok || v != "" {
		t.Errorf("Details(true) open = %q (%v), want bare attribute", v, ok)
	}
}

func TestIfHelpers(t *testing.T) {
	keep := P("shown")

	if If(true, keep) != keep {
		t.Error("If(true) should return the element")
	}
	if If(false, keep) != nil {
		t.Error("If(false) should return nil")
	}
	if IfElse(false, keep, nil) != nil {
		t.Error("IfElse(false) should return ifFalse")
	}

	// Append drops the typed nil from a false branch.
	div := Div().Append(If(false, keep), If(true, keep))
	if got := len(div.Children()); got != 1 {
		t.Errorf("children = %d, want 1", got)
	}
}

func TestWrappersSatisfyNode(t *testing.T) {
	body := Body().Append(
		NewTable(Tr(Td("x"))),
		InputText("q"),
		NewOption("v"),
		Td("loose"),
	)

	wantTags := []string{"table", "input", "option", "td"}
	kids := body.Children()
	if len(kids) != len(wantTags) {
		t.Fatalf("children = %d, want %d", len(kids), len(wantTags))
	}
	for i, tag := range wantTags {
		if kids[i].Tag() != tag {
			t.Errorf("child %d tag = %q, want %q", i, kids[i].Tag(), tag)
		}
	}
}
