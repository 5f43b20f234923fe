package model

// Go models for one resume. Field names follow the JSON documents the editor
// exchanges with clients.

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	// Website is only shown by styles whose features include HasWebsite.
	Website string `json:"website,omitempty"`
}

type ExperienceItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Date        string   `json:"date"`
	Description []string `json:"description"`
}

type EducationItem struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Date   string `json:"date"`
}

type SkillItem struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type LanguageItem struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type AchievementItem struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type ReferenceItem struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Resume struct {
	PersonalInfo PersonalInfo             `json:"personalInfo"`
	About        string                   `json:"about"`
	Experience   []ExperienceItem         `json:"experience"`
	Education    []EducationItem          `json:"education"`
	Skills       []SkillItem              `json:"skills"`
	Languages    []LanguageItem           `json:"languages"`
	Achievements Section[AchievementItem] `json:"achievements,omitzero"`
	References   Section[ReferenceItem]   `json:"references,omitzero"`
}

// Features lists the optional parts of a resume a style supports.
type Features struct {
	HasWebsite                     bool `json:"hasWebsite"`
	HasAchievements                bool `json:"hasAchievements"`
	HasReferences                  bool `json:"hasReferences"`
	HasProfessionalTechnicalSkills bool `json:"hasProfessionalTechnicalSkills"`
}

// Clone returns a deep copy that shares no slices with r.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = nil
	if r.Experience != nil {
		out.Experience = make([]ExperienceItem, len(r.Experience))
		for i, e := range r.Experience {
			e.Description = cloneSlice(e.Description)
			out.Experience[i] = e
		}
	}
	out.Education = cloneSlice(r.Education)
	out.Skills = cloneSlice(r.Skills)
	out.Languages = cloneSlice(r.Languages)
	out.Achievements = r.Achievements.clone()
	out.References = r.References.clone()
	return out
}

// Scoped returns a copy of r with everything the feature set excludes
// removed, so a template never sees data its style does not support.
func (r Resume) Scoped(f Features) Resume {
	out := r.Clone()
	if !f.HasWebsite {
		out.PersonalInfo.Website = ""
	}
	if !f.HasAchievements {
		out.Achievements = Absent[AchievementItem]()
	}
	if !f.HasReferences {
		out.References = Absent[ReferenceItem]()
	}
	return out
}

// ForStyle returns a copy of r holding exactly the optional sections the
// feature set supports: unsupported ones are dropped and supported ones are
// made present, empty if r had none.
func (r Resume) ForStyle(f Features) Resume {
	out := r.Scoped(f)
	if f.HasAchievements && !out.Achievements.IsPresent() {
		out.Achievements = Present[AchievementItem]()
	}
	if f.HasReferences && !out.References.IsPresent() {
		out.References = Present[ReferenceItem]()
	}
	return out
}

// FirstLine returns the first description bullet of e, or "" when there is none.
func FirstLine(e ExperienceItem) string {
	if len(e.Description) == 0 {
		return ""
	}
	return e.Description[0]
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
