package el

import (
	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

// Form creates a <form> element with an optional action.
func Form(action ...string) *element.Element {
	e := element.New("form")
	if len(action) > 0 {
		e.SetAttr("action", action[0])
	}
	return e
}

// Label creates a <label> element, bound to a control id when given.
func Label(content string, forID ...string) *element.Element {
	e := element.New("label", content)
	if len(forID) > 0 {
		e.SetAttr("for", forID[0])
	}
	return e
}

// Button creates a <button> element.
func Button(content string) *element.Element {
	return element.New("button", content).ForceClose()
}

// Fieldset creates a <fieldset> element.
func Fieldset() *element.Element { return element.New("fieldset") }

// Legend creates a <legend> element.
func Legend(content string) *element.Element { return element.New("legend", content) }

// TextArea creates a <textarea> element. Zero cols or rows are omitted.
// It renders as a paired tag even while empty.
func TextArea(name string, cols, rows uint) *element.Element {
	e := element.New("textarea").ForceClose().SetAttr("name", name)
	if cols > 0 {
		e.SetAttrUint("cols", cols)
	}
	if rows > 0 {
		e.SetAttrUint("rows", rows)
	}
	return e
}

// Select creates a <select> element; append options with NewOption.
func Select(name string) *element.Element {
	return element.New("select").SetAttr("name", name)
}

// DataList creates a <datalist> element for use with InputList.
func DataList(id string) *element.Element {
	return element.New("datalist").SetAttr("id", id)
}

// Option wraps an <option> element for Select and DataList.
type Option struct {
	el *element.Element
}

// NewOption creates an option with a value and optional display content.
// Options render as paired tags even while empty.
func NewOption(value string, content ...string) Option {
	return Option{el: element.New("option", content...).ForceClose().SetAttr("value", value)}
}

// Elem returns the underlying element, satisfying element.Node.
func (o Option) Elem() *element.Element { return o.el }

// Selected marks the option as selected.
func (o Option) Selected() Option {
	o.el.SetAttr("selected", "")
	return o
}

// Input wraps an <input> element and carries the fluent attribute helpers
// shared by every input type.
type Input struct {
	el *element.Element
}

// NewInput creates an input. Empty type or name are omitted.
func NewInput(typ, name string) Input {
	e := element.New("input")
	if typ != "" {
		e.SetAttr("type", typ)
	}
	if name != "" {
		e.SetAttr("name", name)
	}
	return Input{el: e}
}

func inputWithValue(typ, name string, value []string) Input {
	in := NewInput(typ, name)
	if len(value) > 0 {
		in.el.SetAttr("value", value[0])
	}
	return in
}

// InputText creates a text input with an optional initial value.
func InputText(name string, value ...string) Input { return inputWithValue("text", name, value) }

// InputPassword creates a password input.
func InputPassword(name string) Input { return NewInput("password", name) }

// InputNumber creates a number input with an optional initial value.
func InputNumber(name string, value ...string) Input { return inputWithValue("number", name, value) }

// InputRange creates a range input with an optional initial value.
func InputRange(name string, value ...string) Input { return inputWithValue("range", name, value) }

// InputRadio creates a radio button with an optional value.
func InputRadio(name string, value ...string) Input { return inputWithValue("radio", name, value) }

// InputCheckbox creates a checkbox with an optional value.
func InputCheckbox(name string, value ...string) Input {
	return inputWithValue("checkbox", name, value)
}

// InputDate creates a date input with an optional initial value.
func InputDate(name string, value ...string) Input { return inputWithValue("date", name, value) }

// InputTime creates a time input with an optional initial value.
func InputTime(name string, value ...string) Input { return inputWithValue("time", name, value) }

// InputEmail creates an email input with an optional initial value.
func InputEmail(name string, value ...string) Input { return inputWithValue("email", name, value) }

// InputURL creates a url input with an optional initial value.
func InputURL(name string, value ...string) Input { return inputWithValue("url", name, value) }

// InputHidden creates a hidden input carrying a fixed value.
func InputHidden(name, value string) Input {
	in := NewInput("hidden", name)
	in.el.SetAttr("value", value)
	return in
}

// InputSubmit creates a submit button with an optional label value.
func InputSubmit(value ...string) Input { return inputWithValue("submit", "", value) }

// InputReset creates a reset button with an optional label value.
func InputReset(value ...string) Input { return inputWithValue("reset", "", value) }

// InputList creates an input bound to a DataList by id. No type attribute
// is set; the datalist drives the control.
func InputList(name, list string) Input {
	in := NewInput("", name)
	in.el.SetAttr("list", list)
	return in
}

// Elem returns the underlying element, satisfying element.Node.
func (i Input) Elem() *element.Element { return i.el }

// Attr sets an arbitrary attribute.
func (i Input) Attr(name, value string) Input {
	i.el.SetAttr(name, value)
	return i
}

// AttrUint sets an arbitrary attribute to the decimal form of value.
func (i Input) AttrUint(name string, value uint) Input {
	i.el.SetAttrUint(name, value)
	return i
}

// ID sets the id attribute.
func (i Input) ID(v string) Input { return i.Attr("id", v) }

// Class sets the class attribute.
func (i Input) Class(v string) Input { return i.Attr("class", v) }

// Title sets the title attribute.
func (i Input) Title(v string) Input { return i.Attr("title", v) }

// Style sets the style attribute.
func (i Input) Style(v string) Input { return i.Attr("style", v) }

// Value sets the value attribute.
func (i Input) Value(v string) Input { return i.Attr("value", v) }

// Placeholder sets the placeholder attribute.
func (i Input) Placeholder(v string) Input { return i.Attr("placeholder", v) }

// Size sets the size attribute.
func (i Input) Size(n uint) Input { return i.AttrUint("size", n) }

// MaxLength sets the maxlength attribute.
func (i Input) MaxLength(n uint) Input { return i.AttrUint("maxlength", n) }

// Min sets the min attribute from a string form, as used by date and time
// inputs.
func (i Input) Min(v string) Input { return i.Attr("min", v) }

// MinUint sets the min attribute from a number.
func (i Input) MinUint(n uint) Input { return i.AttrUint("min", n) }

// Max sets the max attribute from a string form.
func (i Input) Max(v string) Input { return i.Attr("max", v) }

// MaxUint sets the max attribute from a number.
func (i Input) MaxUint(n uint) Input { return i.AttrUint("max", n) }

// Checked marks the input as checked.
func (i Input) Checked() Input { return i.Attr("checked", "") }

// Autocomplete enables autocompletion as a bare attribute.
func (i Input) Autocomplete() Input { return i.Attr("autocomplete", "") }

// Autofocus requests focus on page load.
func (i Input) Autofocus() Input { return i.Attr("autofocus", "") }

// Disabled disables the control.
func (i Input) Disabled() Input { return i.Attr("disabled", "") }

// ReadOnly makes the control read-only.
func (i Input) ReadOnly() Input { return i.Attr("readonly", "") }

// Required marks the control as required.
func (i Input) Required() Input { return i.Attr("required", "") }
