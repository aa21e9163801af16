package codegen

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeMarkup collapses whitespace runs to single spaces and strips
// newlines so the markup fits a single-line string literal. Quoting is left
// to the script printer.
func SanitizeMarkup(content string) string {
	return strings.ReplaceAll(whitespaceRun.ReplaceAllString(content, " "), "\n", "")
}

// MarkupPolicy is the strict policy applied to window content when strict
// markup is enabled. It keeps user-generated-content elements plus the
// form controls and class hooks widgets are bound through.
func MarkupPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowElements("form", "fieldset", "label", "input", "button", "select", "option", "textarea")
	p.AllowAttrs("type", "name", "value", "placeholder", "disabled", "checked", "selected", "readonly").
		OnElements("input", "button", "select", "option", "textarea")
	return p
}

// MissingWidgets returns the widget names that match no element class or
// id in the markup, sorted. Only structural presence is checked.
func MissingWidgets(content string, widgets []string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool)
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			present[id] = true
		}
		if class, ok := s.Attr("class"); ok {
			for _, c := range strings.Fields(class) {
				present[c] = true
			}
		}
	})

	var missing []string
	for _, w := range widgets {
		if !present[w] {
			missing = append(missing, w)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
