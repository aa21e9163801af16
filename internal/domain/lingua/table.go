package lingua

import (
	"sort"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen/js"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

// Entry holds the localized strings of one language
type Entry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Table maps a language code to its localized strings. A Table built by
// Build always contains its default language.
type Table struct {
	DefaultLanguage string
	Entries         map[string]Entry
}

// Build aggregates the descriptor's localized titles and descriptions.
// The default language entry always carries the primary title.
func Build(d *types.Descriptor, defaultLanguage string) Table {
	t := Table{
		DefaultLanguage: defaultLanguage,
		Entries:         make(map[string]Entry, len(d.Titles)+1),
	}

	for lang, title := range d.Titles {
		t.Entries[lang] = Entry{Title: title}
	}
	for lang, desc := range d.Descriptions {
		e := t.Entries[lang]
		e.Description = desc
		t.Entries[lang] = e
	}

	def := t.Entries[defaultLanguage]
	if d.Title != "" {
		def.Title = d.Title
	}
	if d.Description != "" {
		def.Description = d.Description
	}
	t.Entries[defaultLanguage] = def

	// Languages with only a description still need a title
	for lang, e := range t.Entries {
		if e.Title == "" {
			e.Title = def.Title
			t.Entries[lang] = e
		}
	}

	return t
}

// Languages returns the table's language codes in sorted order
func (t Table) Languages() []string {
	langs := make([]string, 0, len(t.Entries))
	for lang := range t.Entries {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// lookup returns the entry for lang, falling back to the default language
func (t Table) lookup(lang string) Entry {
	if e, ok := t.Entries[lang]; ok {
		return e
	}
	return t.Entries[t.DefaultLanguage]
}

// Expr serializes the table as an object literal with sorted keys
func (t Table) Expr() js.Expr {
	props := make([]js.Property, 0, len(t.Entries))
	for _, lang := range t.Languages() {
		e := t.Entries[lang]
		fields := []js.Property{js.Prop("title", js.Str(e.Title))}
		if e.Description != "" {
			fields = append(fields, js.Prop("description", js.Str(e.Description)))
		}
		props = append(props, js.Prop(lang, js.Obj(fields...)))
	}
	return js.Obj(props...)
}

// Script returns the printed object literal
func (t Table) Script() string {
	return js.PrintExpr(t.Expr())
}
