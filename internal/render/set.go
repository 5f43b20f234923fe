package render

import (
	"resume-builder/internal/locale"
	"resume-builder/internal/model"
	"resume-builder/internal/style"
)

// Set holds one Renderer per registry style.
type Set struct {
	registry  *style.Registry
	renderers map[string]*Renderer
}

// NewSet builds renderers for every style of reg. Every style must have a
// template.
func NewSet(reg *style.Registry, locales *locale.Table) (*Set, error) {
	s := &Set{registry: reg, renderers: map[string]*Renderer{}}
	for _, st := range reg.Styles() {
		r, err := New(st, locales)
		if err != nil {
			return nil, err
		}
		s.renderers[st.ID] = r
	}
	return s, nil
}

func (s *Set) Registry() *style.Registry { return s.registry }

// Renderer returns the renderer of styleID.
func (s *Set) Renderer(styleID string) (*Renderer, error) {
	if _, err := s.registry.Lookup(styleID); err != nil {
		return nil, err
	}
	return s.renderers[styleID], nil
}

// Render renders data with the style styleID.
func (s *Set) Render(styleID string, data model.Resume, lang string) (string, error) {
	r, err := s.Renderer(styleID)
	if err != nil {
		return "", err
	}
	return r.Render(data, lang)
}
