// Package render turns resume data into complete, self-contained HTML resume
// documents, one html/template per style.
//
// Rendering is a pure function of the data and the language code: the same
// input always produces the same bytes.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/locale"
	"resume-builder/internal/model"
	"resume-builder/internal/style"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrNoTemplate = errors.New("no template for style")

// templateFiles maps style ids to their template under templates/.
var templateFiles = map[string]string{
	style.Minimal: "style1.html",
	style.Classic: "style2.html",
	style.Modern:  "style4.html",
}

// Headings used when the locale has no label for an optional section.
const (
	fallbackAchievementHeading = "ACHIEVEMENT"
	fallbackReferenceHeading   = "REFERENCE"
	fallbackWebsite            = "www.yourdomain.com"
)

// Number of leading skills shown as "Professional" when a style splits skills.
const professionalSkillCount = 3

// Shown under "Technical" when there are too few skills to fill it.
var technicalSkillFallback = []string{"Graphic Design", "Web Development"}

var funcs = template.FuncMap{
	"upper":     strings.ToUpper,
	"firstLine": model.FirstLine,
}

// Renderer renders documents for one style.
type Renderer struct {
	style   style.Style
	tpl     *template.Template
	locales *locale.Table
}

// New parses the template of st.
func New(st style.Style, locales *locale.Table) (*Renderer, error) {
	file, ok := templateFiles[st.ID]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoTemplate, st.ID)
	}
	tpl, err := template.New(file).Funcs(funcs).ParseFS(templateFS, "templates/"+file)
	if err != nil {
		return nil, fmt.Errorf("render: parse %s: %w", file, err)
	}
	return &Renderer{style: st, tpl: tpl, locales: locales}, nil
}

func (r *Renderer) Style() style.Style { return r.style }

// Render produces the HTML document for data in the language lang. An empty
// lang means English. Data the style's features exclude is never rendered,
// even when data carries it.
func (r *Renderer) Render(data model.Resume, lang string) (string, error) {
	v := r.view(data, r.locales.Lookup(lang))
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render: style %s: %w", r.style.ID, err)
	}
	return buf.String(), nil
}

type view struct {
	Lang  string
	Dir   string
	Align string
	Font  string
	RTL   bool
	L     locale.Labels

	Person     model.PersonalInfo
	Website    string
	About      string
	Experience []model.ExperienceItem
	Education  []model.EducationItem
	Skills     []model.SkillItem
	Languages  []model.LanguageItem

	SplitSkills        bool
	ProfessionalSkills []model.SkillItem
	TechnicalSkills    []model.SkillItem
	SkillFallback      []string

	AchievementHeading string
	Achievements       []model.AchievementItem
	ReferenceHeading   string
	References         []model.ReferenceItem
}

func (r *Renderer) view(data model.Resume, loc locale.Locale) view {
	f := r.style.Features
	d := data.Scoped(f)
	labels := loc.Labels()

	v := view{
		Lang:       loc.HTMLLang(),
		Dir:        loc.Dir(),
		Align:      loc.Align(),
		Font:       r.font(loc),
		RTL:        loc.IsArabic(),
		L:          labels,
		Person:     d.PersonalInfo,
		About:      d.About,
		Experience: d.Experience,
		Education:  d.Education,
		Skills:     d.Skills,
		Languages:  d.Languages,

		AchievementHeading: headingOr(labels.Achievement, fallbackAchievementHeading),
		ReferenceHeading:   headingOr(labels.Reference, fallbackReferenceHeading),
	}

	if f.HasWebsite {
		v.Website = d.PersonalInfo.Website
		if v.Website == "" {
			v.Website = fallbackWebsite
		}
	}
	if items, ok := d.Achievements.Items(); ok {
		v.Achievements = items
	}
	if items, ok := d.References.Items(); ok {
		v.References = items
	}

	if f.HasProfessionalTechnicalSkills {
		v.SplitSkills = true
		v.ProfessionalSkills, v.TechnicalSkills = splitSkills(d.Skills)
		if len(d.Skills) <= professionalSkillCount {
			v.SkillFallback = technicalSkillFallback
		}
	}
	return v
}

// font picks the body font. The Classic style sets its own Latin face.
func (r *Renderer) font(loc locale.Locale) string {
	if r.style.ID == style.Classic {
		return loc.FontOr("Lato")
	}
	return loc.Font()
}

// splitSkills takes the first three skills as professional and the rest as
// technical, by position only.
func splitSkills(skills []model.SkillItem) (professional, technical []model.SkillItem) {
	if len(skills) <= professionalSkillCount {
		return skills, nil
	}
	return skills[:professionalSkillCount], skills[professionalSkillCount:]
}

func headingOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return strings.ToUpper(label)
}
