package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/locale"
	"resume-builder/internal/model"
	"resume-builder/internal/style"
)

func newSet(t *testing.T) *Set {
	t.Helper()
	locales, err := locale.NewTable()
	require.NoError(t, err)
	set, err := NewSet(style.Default(), locales)
	require.NoError(t, err)
	return set
}

func defaults(t *testing.T, id string) model.Resume {
	t.Helper()
	st, err := style.Default().Lookup(id)
	require.NoError(t, err)
	return st.DefaultData()
}

func render(t *testing.T, set *Set, id string, data model.Resume, lang string) string {
	t.Helper()
	out, err := set.Render(id, data, lang)
	require.NoError(t, err)
	return out
}

func countBlocks(doc, kind string) int {
	return strings.Count(doc, `data-block="`+kind+`"`)
}

var skillAttr = regexp.MustCompile(`data-skill="([^"]*)"`)

func skillNames(doc string) []string {
	var names []string
	for _, m := range skillAttr.FindAllStringSubmatch(doc, -1) {
		names = append(names, m[1])
	}
	return names
}

func TestDirectionFollowsLanguage(t *testing.T) {
	set := newSet(t)
	for _, id := range style.Default().IDs() {
		for _, lang := range []string{locale.English, locale.French, locale.Arabic} {
			t.Run(id+"/"+lang, func(t *testing.T) {
				doc := render(t, set, id, defaults(t, id), lang)
				if lang == locale.Arabic {
					assert.Contains(t, doc, `dir="rtl"`)
					assert.NotContains(t, doc, `dir="ltr"`)
					assert.Contains(t, doc, "text-right")
				} else {
					assert.Contains(t, doc, `dir="ltr"`)
					assert.NotContains(t, doc, `dir="rtl"`)
				}
				assert.Contains(t, doc, `lang="`+strings.ToLower(lang)+`"`)
			})
		}
	}
}

func TestMinimalDefaultScenario(t *testing.T) {
	set := newSet(t)
	doc := render(t, set, style.Minimal, defaults(t, style.Minimal), "EN")

	assert.Contains(t, doc, "David Miller")
	assert.Contains(t, doc, "Software Engineer")
	assert.Contains(t, doc, `dir="ltr"`)
	assert.Equal(t, 1, countBlocks(doc, "experience"))
	assert.Equal(t, 2, strings.Count(doc, "<li data-line>"))
	assert.Contains(t, doc, "About Profile")
	assert.Contains(t, doc, "family=Inter")
	assert.Contains(t, doc, "width: 80%")
}

func TestClassicDefaultScenario(t *testing.T) {
	set := newSet(t)
	doc := render(t, set, style.Classic, defaults(t, style.Classic), "EN")

	assert.Contains(t, doc, `data-section="achievements"`)
	assert.Equal(t, 1, countBlocks(doc, "achievement"))
	assert.Contains(t, doc, "Best Branding Award")
	assert.Contains(t, doc, "ACHIEVEMENT")

	assert.Contains(t, doc, `data-section="references"`)
	assert.Equal(t, 1, countBlocks(doc, "reference"))
	assert.Contains(t, doc, "Sarah Jenkins")
	assert.Contains(t, doc, "REFERENCE")

	assert.Contains(t, doc, "www.davidanderson.design")
	assert.Contains(t, doc, "Visual Edge Studio - USA")
	// only the first bullet is shown
	assert.Contains(t, doc, "Overseeing all creative projects")
	assert.NotContains(t, doc, "Successfully rebranded")
	assert.Contains(t, doc, "font-family: 'Lato'")
}

func TestModernDefaultScenario(t *testing.T) {
	set := newSet(t)
	doc := render(t, set, style.Modern, defaults(t, style.Modern), "EN")

	assert.NotContains(t, doc, `data-section="achievements"`)
	assert.NotContains(t, doc, `data-section="references"`)

	prof, tech := groups(t, doc)
	assert.Equal(t, []string{"User Research", "Usability Testing", "Data Analysis"}, skillNames(prof))
	assert.Equal(t, []string{"Python"}, skillNames(tech))
	assert.Equal(t, 0, countBlocks(doc, "skill-fallback"))
}

func TestModernSkillFallback(t *testing.T) {
	set := newSet(t)
	data := defaults(t, style.Modern)
	data.Skills = data.Skills[:2]

	doc := render(t, set, style.Modern, data, "EN")
	prof, tech := groups(t, doc)
	assert.Equal(t, []string{"User Research", "Usability Testing"}, skillNames(prof))
	assert.Empty(t, skillNames(tech))
	assert.Equal(t, 2, countBlocks(tech, "skill-fallback"))
	assert.Contains(t, tech, "• Graphic Design")
	assert.Contains(t, tech, "• Web Development")
}

// groups splits a Modern document into its professional and technical skill lists.
func groups(t *testing.T, doc string) (string, string) {
	t.Helper()
	p := strings.Index(doc, `data-group="professional"`)
	tc := strings.Index(doc, `data-group="technical"`)
	end := strings.Index(doc, `data-section="languages"`)
	require.True(t, p >= 0 && tc > p && end > tc)
	return doc[p:tc], doc[tc:end]
}

func TestDisabledAchievementsNeverRender(t *testing.T) {
	locales, err := locale.NewTable()
	require.NoError(t, err)

	data := defaults(t, style.Classic)
	st := style.New(style.Classic, "Classic without extras", model.Features{HasWebsite: true}, data)
	r, err := New(st, locales)
	require.NoError(t, err)

	doc, err := r.Render(data, "EN")
	require.NoError(t, err)
	assert.Equal(t, 0, countBlocks(doc, "achievement"))
	assert.Equal(t, 0, countBlocks(doc, "reference"))
	assert.NotContains(t, doc, "Best Branding Award")
	assert.NotContains(t, doc, "Sarah Jenkins")
	// the regions stay, empty
	assert.Contains(t, doc, `data-section="achievements"`)

	// styles without the sections ignore them too
	set := newSet(t)
	for _, id := range []string{style.Minimal, style.Modern} {
		doc := render(t, set, id, data, "EN")
		assert.NotContains(t, doc, "Best Branding Award")
		assert.NotContains(t, doc, "Sarah Jenkins")
	}
}

func TestAbsentOptionalSectionsRenderEmpty(t *testing.T) {
	set := newSet(t)
	data := defaults(t, style.Classic)
	data.Achievements = model.Absent[model.AchievementItem]()
	data.References = model.Absent[model.ReferenceItem]()

	doc := render(t, set, style.Classic, data, "FR")
	assert.Contains(t, doc, `data-section="achievements"`)
	assert.Contains(t, doc, "RÉALISATIONS")
	assert.Contains(t, doc, "RÉFÉRENCES")
	assert.Equal(t, 0, countBlocks(doc, "achievement"))
	assert.Equal(t, 0, countBlocks(doc, "reference"))
}

func TestEmptyExperience(t *testing.T) {
	set := newSet(t)
	for _, id := range style.Default().IDs() {
		t.Run(id, func(t *testing.T) {
			data := defaults(t, id)
			data.Experience = []model.ExperienceItem{}
			doc := render(t, set, id, data, "EN")
			assert.Contains(t, doc, `data-section="experience"`)
			assert.Equal(t, 0, countBlocks(doc, "experience"))
		})
	}
}

func TestEmptyDescription(t *testing.T) {
	set := newSet(t)
	for _, id := range style.Default().IDs() {
		t.Run(id, func(t *testing.T) {
			data := defaults(t, id)
			data.Experience = []model.ExperienceItem{{Title: "Nothing to say", Company: "Co"}}
			doc := render(t, set, id, data, "EN")
			assert.Equal(t, 1, countBlocks(doc, "experience"))
			assert.Contains(t, doc, "Nothing to say")
		})
	}
}

func TestSkillOrderPreserved(t *testing.T) {
	set := newSet(t)
	skills := []model.SkillItem{{Name: "Zig"}, {Name: "Ada"}, {Name: "Go"}, {Name: "C"}, {Name: "Bash"}}
	want := []string{"Zig", "Ada", "Go", "C", "Bash"}

	for _, id := range style.Default().IDs() {
		t.Run(id, func(t *testing.T) {
			data := defaults(t, id)
			data.Skills = skills
			assert.Equal(t, want, skillNames(render(t, set, id, data, "EN")))
		})
	}
}

func TestUnknownLanguageUsesEnglish(t *testing.T) {
	set := newSet(t)
	data := defaults(t, style.Minimal)

	en := render(t, set, style.Minimal, data, "EN")
	zz := render(t, set, style.Minimal, data, "ZZ")
	assert.Contains(t, zz, `dir="ltr"`)
	assert.Contains(t, zz, `lang="zz"`)
	assert.Equal(t, strings.Replace(en, `lang="en"`, `lang="zz"`, 1), zz)
}

func TestEmptyLanguageIsEnglish(t *testing.T) {
	set := newSet(t)
	data := defaults(t, style.Modern)
	assert.Equal(t, render(t, set, style.Modern, data, "EN"), render(t, set, style.Modern, data, ""))
}

func TestRenderIsIdempotent(t *testing.T) {
	set := newSet(t)
	for _, id := range style.Default().IDs() {
		data := defaults(t, id)
		first := render(t, set, id, data, "AR")
		second := render(t, set, id, data, "AR")
		assert.Equal(t, first, second)
	}
}

func TestContentIsEscaped(t *testing.T) {
	set := newSet(t)
	data := defaults(t, style.Minimal)
	data.PersonalInfo.Name = `<script>alert("x")</script>`

	doc := render(t, set, style.Minimal, data, "EN")
	assert.NotContains(t, doc, `<script>alert`)
	assert.Contains(t, doc, "&lt;script&gt;")
}

func TestMissingFieldsRenderEmpty(t *testing.T) {
	set := newSet(t)
	for _, id := range style.Default().IDs() {
		_, err := set.Render(id, model.Resume{}, "EN")
		assert.NoError(t, err)
	}
}

func TestClassicWebsiteFallback(t *testing.T) {
	set := newSet(t)
	data := defaults(t, style.Classic)
	data.PersonalInfo.Website = ""
	assert.Contains(t, render(t, set, style.Classic, data, "EN"), "www.yourdomain.com")

	// other styles never show a website
	data = defaults(t, style.Minimal)
	data.PersonalInfo.Website = "example.org"
	doc := render(t, set, style.Minimal, data, "EN")
	assert.NotContains(t, doc, "example.org")
	assert.NotContains(t, doc, "www.yourdomain.com")
}

func TestUnknownStyle(t *testing.T) {
	_, err := newSet(t).Render("3", model.Resume{}, "EN")
	assert.ErrorIs(t, err, style.ErrUnknownStyle)

	locales, err := locale.NewTable()
	require.NoError(t, err)
	_, err = New(style.New("9", "nine", model.Features{}, model.Resume{}), locales)
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestHeadingOr(t *testing.T) {
	assert.Equal(t, "ACHIEVEMENT", headingOr("", fallbackAchievementHeading))
	assert.Equal(t, "RÉFÉRENCES", headingOr("Références", fallbackReferenceHeading))
}
