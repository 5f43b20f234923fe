package style

import (
	"errors"
	"fmt"

	"resume-builder/internal/model"
)

var ErrUnknownStyle = errors.New("unknown style")

// Style is one resume layout with the optional sections it supports and the
// data an editor starts from.
type Style struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Features model.Features `json:"features"`

	defaults model.Resume
}

// DefaultData returns a fresh deep copy of the style's seed resume.
func (s Style) DefaultData() model.Resume {
	return s.defaults.Clone()
}

// Registry is the closed, ordered set of styles. It is never modified after
// construction and is safe to share between sessions.
type Registry struct {
	order  []string
	styles map[string]Style
}

// NewRegistry builds a registry from styles in display order.
func NewRegistry(styles ...Style) (*Registry, error) {
	r := &Registry{styles: make(map[string]Style, len(styles))}
	for _, s := range styles {
		if s.ID == "" {
			return nil, errors.New("style: empty id")
		}
		if _, dup := r.styles[s.ID]; dup {
			return nil, fmt.Errorf("style: duplicate id %q", s.ID)
		}
		s.defaults = s.defaults.ForStyle(s.Features)
		r.order = append(r.order, s.ID)
		r.styles[s.ID] = s
	}
	return r, nil
}

// New returns a Style seeded with a copy of defaults.
func New(id, name string, features model.Features, defaults model.Resume) Style {
	return Style{ID: id, Name: name, Features: features, defaults: defaults.Clone()}
}

func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Styles() []Style {
	out := make([]Style, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.styles[id])
	}
	return out
}

func (r *Registry) Lookup(id string) (Style, error) {
	s, ok := r.styles[id]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
	}
	return s, nil
}
