// Package locale holds the section labels, writing direction, alignment and
// font choice for each supported resume language.
//
// Labels are loaded from the embedded active.*.toml message files into a
// go-i18n bundle once, when the Table is built. Lookups afterwards are pure
// map reads.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Recognized language codes.
const (
	English = "EN"
	French  = "FR"
	Arabic  = "AR"
)

// Default is used for empty and unrecognized codes.
const Default = English

var tags = map[string]language.Tag{
	English: language.English,
	French:  language.French,
	Arabic:  language.Arabic,
}

var messageFiles = []string{"active.en.toml", "active.fr.toml", "active.ar.toml"}

// Labels are the section headings of a resume document.
type Labels struct {
	About       string `json:"about"`
	Experience  string `json:"experience"`
	Education   string `json:"education"`
	Skills      string `json:"skills"`
	Languages   string `json:"languages"`
	Contact     string `json:"contact"`
	Present     string `json:"present"`
	Achievement string `json:"achievement"`
	Reference   string `json:"reference"`
}

// Table resolves language codes to locales.
type Table struct {
	labels map[language.Tag]Labels
}

// NewTable loads the embedded message files and resolves the label set of
// every supported language.
func NewTable() (*Table, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", file, err)
		}
	}

	t := &Table{labels: make(map[language.Tag]Labels, len(tags))}
	for _, tag := range tags {
		t.labels[tag] = resolveLabels(i18n.NewLocalizer(bundle, tag.String()))
	}
	return t, nil
}

func resolveLabels(l *i18n.Localizer) Labels {
	get := func(id string) string {
		msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			return ""
		}
		return msg
	}
	return Labels{
		About:       get("about"),
		Experience:  get("experience"),
		Education:   get("education"),
		Skills:      get("skills"),
		Languages:   get("languages"),
		Contact:     get("contact"),
		Present:     get("present"),
		Achievement: get("achievement"),
		Reference:   get("reference"),
	}
}

// Lookup returns the locale for code. Unknown codes get the English labels
// and a left-to-right layout; an empty code is treated as English.
func (t *Table) Lookup(code string) Locale {
	if code == "" {
		code = Default
	}
	tag, ok := tags[code]
	if !ok {
		tag = tags[Default]
	}
	return Locale{code: code, labels: t.labels[tag]}
}

// Locale is the resolved presentation settings for one language code.
type Locale struct {
	code   string
	labels Labels
}

// Code is the code the locale was looked up with, unknown codes included.
func (l Locale) Code() string { return l.code }

func (l Locale) Labels() Labels { return l.labels }

func (l Locale) IsArabic() bool { return l.code == Arabic }

// HTMLLang is the value of the document's lang attribute.
func (l Locale) HTMLLang() string { return strings.ToLower(l.code) }

// Dir is the writing direction: rtl for Arabic, ltr for everything else.
func (l Locale) Dir() string {
	if l.IsArabic() {
		return "rtl"
	}
	return "ltr"
}

// Align is the text alignment class of the document body.
func (l Locale) Align() string {
	if l.IsArabic() {
		return "text-right"
	}
	return "text-left"
}

// Font is the default display font: Cairo for Arabic, Roboto for French and
// Inter otherwise.
func (l Locale) Font() string {
	switch l.code {
	case Arabic:
		return "Cairo"
	case French:
		return "Roboto"
	}
	return "Inter"
}

// FontOr is Cairo for Arabic and alt for every other code.
func (l Locale) FontOr(alt string) string {
	if l.IsArabic() {
		return "Cairo"
	}
	return alt
}
