package model

import (
	"errors"
	"fmt"
)

// SectionName identifies one of the editable item sequences of a Resume.
type SectionName string

const (
	SectionExperience   SectionName = "experience"
	SectionEducation    SectionName = "education"
	SectionSkills       SectionName = "skills"
	SectionLanguages    SectionName = "languages"
	SectionAchievements SectionName = "achievements"
	SectionReferences   SectionName = "references"
)

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownField    = errors.New("unknown field")
	ErrIndexOutOfRange = errors.New("item index out of range")
)

// ParseSection maps a section name from a request path to a SectionName.
func ParseSection(s string) (SectionName, error) {
	switch n := SectionName(s); n {
	case SectionExperience, SectionEducation, SectionSkills, SectionLanguages,
		SectionAchievements, SectionReferences:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Optional reports whether the section only exists for styles that enable it.
func (n SectionName) Optional() bool {
	return n == SectionAchievements || n == SectionReferences
}

// Enabled reports whether a style with the given features can hold the section.
func (n SectionName) Enabled(f Features) bool {
	switch n {
	case SectionAchievements:
		return f.HasAchievements
	case SectionReferences:
		return f.HasReferences
	}
	return true
}

// SetPersonalField writes one personal info field.
func (r *Resume) SetPersonalField(field, value string) error {
	p := &r.PersonalInfo
	switch field {
	case "name":
		p.Name = value
	case "title":
		p.Title = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "website":
		p.Website = value
	default:
		return fmt.Errorf("%w: personalInfo.%s", ErrUnknownField, field)
	}
	return nil
}

// SetItemField writes a string field of one item. Writing "description" of an
// experience item replaces the bullet list with the single given line.
func (r *Resume) SetItemField(section SectionName, index int, field, value string) error {
	switch section {
	case SectionExperience:
		return updateAt(r.Experience, index, func(e *ExperienceItem) error {
			return setExperienceField(e, field, value)
		})
	case SectionEducation:
		return updateAt(r.Education, index, func(e *EducationItem) error {
			return setFields(section, field, value, map[string]*string{
				"degree": &e.Degree, "school": &e.School, "date": &e.Date,
			})
		})
	case SectionSkills:
		return updateAt(r.Skills, index, func(s *SkillItem) error {
			return setFields(section, field, value, map[string]*string{
				"name": &s.Name, "level": &s.Level,
			})
		})
	case SectionLanguages:
		return updateAt(r.Languages, index, func(l *LanguageItem) error {
			return setFields(section, field, value, map[string]*string{
				"name": &l.Name, "proficiency": &l.Proficiency,
			})
		})
	case SectionAchievements:
		return updateAt(r.Achievements.items, index, func(a *AchievementItem) error {
			return setFields(section, field, value, map[string]*string{
				"title": &a.Title, "subtitle": &a.Subtitle, "date": &a.Date, "description": &a.Description,
			})
		})
	case SectionReferences:
		return updateAt(r.References.items, index, func(ref *ReferenceItem) error {
			return setFields(section, field, value, map[string]*string{
				"name": &ref.Name, "title": &ref.Title, "phone": &ref.Phone, "email": &ref.Email,
			})
		})
	}
	return fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

// SetDescription replaces the bullet list of one experience item.
func (r *Resume) SetDescription(index int, lines []string) error {
	return updateAt(r.Experience, index, func(e *ExperienceItem) error {
		e.Description = cloneSlice(lines)
		if e.Description == nil {
			e.Description = []string{}
		}
		return nil
	})
}

// AddItem appends the blank item template of section. Adding to an absent
// optional section makes it present.
func (r *Resume) AddItem(section SectionName) error {
	switch section {
	case SectionExperience:
		r.Experience = append(r.Experience, ExperienceItem{Description: []string{""}})
	case SectionEducation:
		r.Education = append(r.Education, EducationItem{})
	case SectionSkills:
		r.Skills = append(r.Skills, SkillItem{})
	case SectionLanguages:
		r.Languages = append(r.Languages, LanguageItem{})
	case SectionAchievements:
		r.Achievements.append(AchievementItem{})
	case SectionReferences:
		r.References.append(ReferenceItem{})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return nil
}

// RemoveItem deletes the item at index, keeping the order of the others.
func (r *Resume) RemoveItem(section SectionName, index int) error {
	var n int
	switch section {
	case SectionExperience:
		n = len(r.Experience)
	case SectionEducation:
		n = len(r.Education)
	case SectionSkills:
		n = len(r.Skills)
	case SectionLanguages:
		n = len(r.Languages)
	case SectionAchievements:
		n = r.Achievements.Len()
	case SectionReferences:
		n = r.References.Len()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, section, index)
	}

	switch section {
	case SectionExperience:
		r.Experience = append(r.Experience[:index], r.Experience[index+1:]...)
	case SectionEducation:
		r.Education = append(r.Education[:index], r.Education[index+1:]...)
	case SectionSkills:
		r.Skills = append(r.Skills[:index], r.Skills[index+1:]...)
	case SectionLanguages:
		r.Languages = append(r.Languages[:index], r.Languages[index+1:]...)
	case SectionAchievements:
		r.Achievements.remove(index)
	case SectionReferences:
		r.References.remove(index)
	}
	return nil
}

func setExperienceField(e *ExperienceItem, field, value string) error {
	switch field {
	case "title":
		e.Title = value
	case "company":
		e.Company = value
	case "date":
		e.Date = value
	case "description":
		e.Description = []string{value}
	default:
		return fmt.Errorf("%w: experience.%s", ErrUnknownField, field)
	}
	return nil
}

func setFields(section SectionName, field, value string, fields map[string]*string) error {
	dst, ok := fields[field]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, field)
	}
	*dst = value
	return nil
}

func updateAt[T any](items []T, index int, apply func(*T) error) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return apply(&items[index])
}
