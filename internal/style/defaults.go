package style

import "resume-builder/internal/model"

// Reference style ids.
const (
	Minimal = "1"
	Classic = "2"
	Modern  = "4"
)

// Default returns the built-in registry: Minimal, Classic and Modern, in that
// order.
func Default() *Registry {
	r, err := NewRegistry(minimalStyle(), classicStyle(), modernStyle())
	if err != nil {
		// the built-in table has fixed, distinct ids
		panic(err)
	}
	return r
}

func minimalStyle() Style {
	return New(Minimal, "Minimal (David)", model.Features{}, model.Resume{
		PersonalInfo: model.PersonalInfo{
			Name:     "David Miller",
			Title:    "Software Engineer",
			Email:    "david.miller@example.com",
			Phone:    "+1 234 567 890",
			Location: "San Francisco, CA",
		},
		About: "Experienced software engineer with a focus on building scalable web applications. Proficient in modern JavaScript frameworks and cloud infrastructure.",
		Experience: []model.ExperienceItem{
			{
				Title:   "Full Stack Developer",
				Company: "Tech Solutions Inc.",
				Date:    "2021 - Present",
				Description: []string{
					"Developed and maintained multiple client-facing web applications using React and Node.js.",
					"Optimized database queries, reducing load times by 30%.",
				},
			},
		},
		Education: []model.EducationItem{
			{Degree: "B.S. in Computer Science", School: "Stanford University", Date: "2016 - 2020"},
		},
		Skills: []model.SkillItem{
			{Name: "JavaScript", Level: "Expert"},
			{Name: "React", Level: "Expert"},
			{Name: "Node.js", Level: "Advanced"},
		},
		Languages: []model.LanguageItem{
			{Name: "English", Proficiency: "Native"},
		},
	})
}

func classicStyle() Style {
	features := model.Features{HasWebsite: true, HasAchievements: true, HasReferences: true}
	return New(Classic, "Classic (David Anderson)", features, model.Resume{
		PersonalInfo: model.PersonalInfo{
			Name:     "David Anderson",
			Title:    "Senior Graphic Designer",
			Email:    "david.anderson@design.com",
			Phone:    "+1 555 123 4567",
			Location: "Chicago, IL",
			Website:  "www.davidanderson.design",
		},
		About: "Award-winning graphic designer with over 10 years of experience in branding and visual identity. Passionate about creating clean, impactful designs that tell a story.",
		Experience: []model.ExperienceItem{
			{
				Title:   "Creative Director",
				Company: "Visual Edge Studio",
				Date:    "2018 - Present",
				Description: []string{
					"Overseeing all creative projects and leading a team of 5 designers.",
					"Successfully rebranded 3 Fortune 500 companies.",
				},
			},
		},
		Education: []model.EducationItem{
			{Degree: "M.A. in Visual Communication", School: "School of the Art Institute of Chicago", Date: "2012 - 2014"},
		},
		Skills: []model.SkillItem{
			{Name: "Adobe Creative Suite", Level: "Expert"},
			{Name: "Branding", Level: "Expert"},
			{Name: "Typography", Level: "Expert"},
		},
		Languages: []model.LanguageItem{
			{Name: "English", Proficiency: "Native"},
			{Name: "Spanish", Proficiency: "Fluent"},
		},
		Achievements: model.Present(model.AchievementItem{
			Title:       "Best Branding Award",
			Subtitle:    "Design Week Awards",
			Date:        "2022",
			Description: "Recognized for the outstanding rebranding project of Global Tech.",
		}),
		References: model.Present(model.ReferenceItem{
			Name:  "Sarah Jenkins",
			Title: "CEO, Visual Edge",
			Phone: "+1 555 987 6543",
			Email: "sarah@visualedge.com",
		}),
	})
}

func modernStyle() Style {
	features := model.Features{HasProfessionalTechnicalSkills: true}
	return New(Modern, "Modern (Michael)", features, model.Resume{
		PersonalInfo: model.PersonalInfo{
			Name:     "Michael Stevens",
			Title:    "UX Researcher",
			Email:    "michael.stevens@ux.com",
			Phone:    "+1 444 555 6666",
			Location: "Austin, TX",
		},
		About: "Dedicated UX Researcher with a background in psychology. Expert in conducting user interviews, usability testing, and translating insights into actionable design recommendations.",
		Experience: []model.ExperienceItem{
			{
				Title:   "Lead UX Researcher",
				Company: "UserFirst Systems",
				Date:    "2019 - Present",
				Description: []string{
					"Implemented a new research repository that improved cross-team collaboration.",
					"Conducted over 100 usability tests for the flagship mobile app.",
				},
			},
		},
		Education: []model.EducationItem{
			{Degree: "Ph.D. in Cognitive Psychology", School: "University of Texas at Austin", Date: "2014 - 2019"},
		},
		Skills: []model.SkillItem{
			{Name: "User Research", Level: "Expert"},
			{Name: "Usability Testing", Level: "Expert"},
			{Name: "Data Analysis", Level: "Advanced"},
			{Name: "Python", Level: "Intermediate"},
		},
		Languages: []model.LanguageItem{
			{Name: "English", Proficiency: "Native"},
			{Name: "German", Proficiency: "B1"},
		},
	})
}
