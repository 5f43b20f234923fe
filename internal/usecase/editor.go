package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"resume-builder/internal/metrics"
	"resume-builder/internal/model"
	"resume-builder/internal/style"
)

var ErrSectionDisabled = errors.New("section disabled for this style")

// DocumentRenderer renders resume data with a registered style.
type DocumentRenderer interface {
	Registry() *style.Registry
	Render(styleID string, data model.Resume, lang string) (string, error)
}

// Editor applies edits to sessions and keeps their previews current. Every
// successful mutation re-renders the active style; a failed one leaves the
// session untouched.
type Editor struct {
	set             DocumentRenderer
	store           *Store
	defaultStyle    string
	defaultLanguage string
}

func NewEditor(set DocumentRenderer, store *Store, defaultStyle, defaultLanguage string) *Editor {
	return &Editor{set: set, store: store, defaultStyle: defaultStyle, defaultLanguage: defaultLanguage}
}

// Styles lists the registered styles in display order.
func (e *Editor) Styles() []style.Style { return e.set.Registry().Styles() }

// Style returns the registered style id.
func (e *Editor) Style(id string) (style.Style, error) { return e.set.Registry().Lookup(id) }

// Create starts a session seeded with every style's default data. Empty
// arguments select the configured defaults.
func (e *Editor) Create(styleID, language string) (SessionState, error) {
	if styleID == "" {
		styleID = e.defaultStyle
	}
	if language == "" {
		language = e.defaultLanguage
	}
	reg := e.set.Registry()
	if _, err := reg.Lookup(styleID); err != nil {
		return SessionState{}, err
	}

	sess := &Session{
		ID:       uuid.New(),
		styleID:  styleID,
		language: language,
		working:  map[string]model.Resume{},
	}
	for _, st := range reg.Styles() {
		sess.working[st.ID] = st.DefaultData()
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := e.refresh(sess); err != nil {
		return SessionState{}, err
	}
	e.store.put(sess)
	slog.Info("session created", "session_id", sess.ID, "style", styleID, "language", language)
	return e.state(sess)
}

// State returns a copy of the session's active data and settings.
func (e *Editor) State(id uuid.UUID) (SessionState, error) {
	sess, err := e.store.Get(id)
	if err != nil {
		return SessionState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return e.state(sess)
}

// Delete drops a session.
func (e *Editor) Delete(id uuid.UUID) error {
	if _, err := e.store.Get(id); err != nil {
		return err
	}
	e.store.Delete(id)
	return nil
}

// SelectStyle makes styleID the active style. Each style keeps its own edits.
func (e *Editor) SelectStyle(id uuid.UUID, styleID string) (SessionState, error) {
	if _, err := e.set.Registry().Lookup(styleID); err != nil {
		return SessionState{}, err
	}
	return e.withSession(id, func(sess *Session) error {
		sess.styleID = styleID
		return nil
	})
}

// SetLanguage changes the display language. Unknown codes render as English.
func (e *Editor) SetLanguage(id uuid.UUID, language string) (SessionState, error) {
	return e.withSession(id, func(sess *Session) error {
		sess.language = language
		return nil
	})
}

func (e *Editor) SetPersonalInfo(id uuid.UUID, field, value string) (SessionState, error) {
	return e.edit(id, func(st style.Style, data *model.Resume) error {
		if field == "website" && !st.Features.HasWebsite {
			return fmt.Errorf("%w: personalInfo.website", ErrSectionDisabled)
		}
		return data.SetPersonalField(field, value)
	})
}

func (e *Editor) SetAbout(id uuid.UUID, about string) (SessionState, error) {
	return e.edit(id, func(_ style.Style, data *model.Resume) error {
		data.About = about
		return nil
	})
}

// SetItemField writes one string field of an item. A value written to an
// experience "description" becomes a one-line description.
func (e *Editor) SetItemField(id uuid.UUID, section model.SectionName, index int, field, value string) (SessionState, error) {
	return e.edit(id, func(st style.Style, data *model.Resume) error {
		if err := checkEnabled(st, section); err != nil {
			return err
		}
		return data.SetItemField(section, index, field, value)
	})
}

// SetDescription replaces the bullet lines of an experience item.
func (e *Editor) SetDescription(id uuid.UUID, index int, lines []string) (SessionState, error) {
	return e.edit(id, func(_ style.Style, data *model.Resume) error {
		return data.SetDescription(index, lines)
	})
}

// AddItem appends a blank item to section.
func (e *Editor) AddItem(id uuid.UUID, section model.SectionName) (SessionState, error) {
	return e.edit(id, func(st style.Style, data *model.Resume) error {
		if err := checkEnabled(st, section); err != nil {
			return err
		}
		return data.AddItem(section)
	})
}

// RemoveItem deletes the item at index from section.
func (e *Editor) RemoveItem(id uuid.UUID, section model.SectionName, index int) (SessionState, error) {
	return e.edit(id, func(st style.Style, data *model.Resume) error {
		if err := checkEnabled(st, section); err != nil {
			return err
		}
		return data.RemoveItem(section, index)
	})
}

// ReplaceResume swaps the active style's data for r. Data the style cannot
// show is dropped.
func (e *Editor) ReplaceResume(id uuid.UUID, r model.Resume) (SessionState, error) {
	return e.edit(id, func(st style.Style, data *model.Resume) error {
		*data = r.Clone().ForStyle(st.Features)
		return nil
	})
}

// Reset restores the active style's default data.
func (e *Editor) Reset(id uuid.UUID) (SessionState, error) {
	return e.edit(id, func(st style.Style, data *model.Resume) error {
		*data = st.DefaultData()
		return nil
	})
}

// Preview returns the last rendered document of the session.
func (e *Editor) Preview(id uuid.UUID) (string, error) {
	sess, err := e.store.Get(id)
	if err != nil {
		return "", err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.preview, nil
}

// Snapshot captures what an export of the session would contain.
func (e *Editor) Snapshot(id uuid.UUID) (Snapshot, error) {
	sess, err := e.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return Snapshot{
		SessionID: sess.ID,
		StyleID:   sess.styleID,
		Language:  sess.language,
		FileBase:  sess.working[sess.styleID].PersonalInfo.Name,
		HTML:      sess.preview,
	}, nil
}

// PreviewStyle renders a style's default data without a session.
func (e *Editor) PreviewStyle(styleID, language string) (string, error) {
	st, err := e.set.Registry().Lookup(styleID)
	if err != nil {
		return "", err
	}
	return e.set.Render(styleID, st.DefaultData(), language)
}

func checkEnabled(st style.Style, section model.SectionName) error {
	if !section.Enabled(st.Features) {
		return fmt.Errorf("%w: %s in style %s", ErrSectionDisabled, section, st.ID)
	}
	return nil
}

// edit runs apply on a copy of the active data and commits it on success.
func (e *Editor) edit(id uuid.UUID, apply func(st style.Style, data *model.Resume) error) (SessionState, error) {
	return e.withSession(id, func(sess *Session) error {
		st, err := e.set.Registry().Lookup(sess.styleID)
		if err != nil {
			return err
		}
		data := sess.working[sess.styleID].Clone()
		if err := apply(st, &data); err != nil {
			return err
		}
		sess.working[sess.styleID] = data
		return nil
	})
}

func (e *Editor) withSession(id uuid.UUID, apply func(sess *Session) error) (SessionState, error) {
	sess, err := e.store.Get(id)
	if err != nil {
		return SessionState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	prevStyle, prevLang, prevPreview := sess.styleID, sess.language, sess.preview
	prevData := sess.working[prevStyle]

	if err := apply(sess); err != nil {
		return SessionState{}, err
	}
	if err := e.refresh(sess); err != nil {
		sess.styleID, sess.language, sess.preview = prevStyle, prevLang, prevPreview
		sess.working[prevStyle] = prevData
		return SessionState{}, err
	}
	return e.state(sess)
}

// refresh re-renders the active style. The caller holds sess.mu.
func (e *Editor) refresh(sess *Session) error {
	html, err := e.set.Render(sess.styleID, sess.working[sess.styleID], sess.language)
	if err != nil {
		sess.preview = ""
		metrics.Renders.WithLabelValues(sess.styleID, "failed").Inc()
		slog.Error("render preview", "session_id", sess.ID, "style", sess.styleID, "error", err)
		return err
	}
	sess.preview = html
	metrics.Renders.WithLabelValues(sess.styleID, "ok").Inc()
	return nil
}

func (e *Editor) state(sess *Session) (SessionState, error) {
	st, err := e.set.Registry().Lookup(sess.styleID)
	if err != nil {
		return SessionState{}, err
	}
	return SessionState{
		ID:       sess.ID,
		StyleID:  sess.styleID,
		Language: sess.language,
		Features: st.Features,
		Resume:   sess.working[sess.styleID].Clone(),
	}, nil
}
