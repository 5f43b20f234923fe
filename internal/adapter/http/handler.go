package http

import (
	"context"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ExportHistory lists the recorded exports of a session.
type ExportHistory interface {
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.ExportRecord, error)
}

type Handler struct {
	editor   *usecase.Editor
	exporter *usecase.Exporter
	history  ExportHistory
}

func NewHandler(e *usecase.Editor, x *usecase.Exporter, h ExportHistory) *Handler {
	return &Handler{editor: e, exporter: x, history: h}
}

// Register mounts every route on app.
func (h *Handler) Register(app fiber.Router) {
	app.Get("/healthz", h.Health)

	app.Get("/styles", h.ListStyles)
	app.Get("/styles/:id", h.GetStyle)
	app.Get("/styles/:id/preview", h.PreviewStyle)

	s := app.Group("/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.DeleteSession)
	s.Put("/:id/style", h.SelectStyle)
	s.Put("/:id/language", h.SetLanguage)
	s.Patch("/:id/personal", h.SetPersonalInfo)
	s.Put("/:id/about", h.SetAbout)
	s.Put("/:id/resume", h.ReplaceResume)
	s.Post("/:id/reset", h.Reset)
	s.Post("/:id/sections/:section", h.AddItem)
	s.Patch("/:id/sections/:section/:index", h.UpdateItem)
	s.Delete("/:id/sections/:section/:index", h.RemoveItem)
	s.Get("/:id/preview", h.Preview)
	s.Get("/:id/print", h.Print)
	s.Post("/:id/export/:format", h.Export)
	s.Get("/:id/exports", h.ListExports)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type styleResp struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Features model.Features `json:"features"`
	Defaults *model.Resume  `json:"defaults,omitempty"`
}

func (h *Handler) ListStyles(c *fiber.Ctx) error {
	styles := h.editor.Styles()
	out := make([]styleResp, 0, len(styles))
	for _, st := range styles {
		out = append(out, styleResp{ID: st.ID, Name: st.Name, Features: st.Features})
	}
	return c.JSON(out)
}

func (h *Handler) GetStyle(c *fiber.Ctx) error {
	st, err := h.editor.Style(c.Params("id"))
	if err != nil {
		return err
	}
	d := st.DefaultData()
	return c.JSON(styleResp{ID: st.ID, Name: st.Name, Features: st.Features, Defaults: &d})
}

func (h *Handler) PreviewStyle(c *fiber.Ctx) error {
	html, err := h.editor.PreviewStyle(c.Params("id"), c.Query("lang"))
	if err != nil {
		return err
	}
	return sendHTML(c, html)
}

type createReq struct {
	StyleID  string `json:"styleId"`
	Language string `json:"language"`
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req createReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
	}
	st, err := h.editor.Create(req.StyleID, req.Language)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	return respond(c)(h.editor.State(id))
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.editor.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) SelectStyle(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req struct {
		StyleID string `json:"styleId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return respond(c)(h.editor.SelectStyle(id, req.StyleID))
}

func (h *Handler) SetLanguage(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return respond(c)(h.editor.SetLanguage(id, req.Language))
}

type fieldReq struct {
	Field       string   `json:"field"`
	Value       string   `json:"value"`
	Description []string `json:"description"`
}

func (h *Handler) SetPersonalInfo(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return respond(c)(h.editor.SetPersonalInfo(id, req.Field, req.Value))
}

func (h *Handler) SetAbout(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req struct {
		About string `json:"about"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return respond(c)(h.editor.SetAbout(id, req.About))
}

// ReplaceResume accepts a whole resume document, checked against the resume
// JSON schema before it is applied.
func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	r, err := model.DecodeDocument(c.Body())
	if err != nil {
		return err
	}
	return respond(c)(h.editor.ReplaceResume(id, r))
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	return respond(c)(h.editor.Reset(id))
}

func (h *Handler) AddItem(c *fiber.Ctx) error {
	id, section, err := sectionParams(c)
	if err != nil {
		return err
	}
	st, err := h.editor.AddItem(id, section)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// UpdateItem writes one field of an item, or replaces the description lines
// of an experience item when "description" is given as a list.
func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	id, section, err := sectionParams(c)
	if err != nil {
		return err
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid index")
	}
	var req fieldReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.Description != nil {
		if section != model.SectionExperience {
			return model.ErrUnknownField
		}
		return respond(c)(h.editor.SetDescription(id, index, req.Description))
	}
	return respond(c)(h.editor.SetItemField(id, section, index, req.Field, req.Value))
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	id, section, err := sectionParams(c)
	if err != nil {
		return err
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid index")
	}
	return respond(c)(h.editor.RemoveItem(id, section, index))
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	html, err := h.editor.Preview(id)
	if err != nil {
		return err
	}
	return sendHTML(c, html)
}

func (h *Handler) Print(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	html, err := h.editor.Preview(id)
	if err != nil {
		return err
	}
	doc, err := usecase.PrintDocument(html)
	if err != nil {
		return err
	}
	return sendHTML(c, doc)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	format, err := usecase.ParseFormat(c.Params("format"))
	if err != nil {
		return err
	}
	snap, err := h.editor.Snapshot(id)
	if err != nil {
		return err
	}
	art, err := h.exporter.Export(c.UserContext(), snap, format)
	if err != nil {
		return err
	}
	c.Attachment(art.FileName)
	c.Set(fiber.HeaderContentType, art.Format.ContentType())
	return c.Send(art.Data)
}

func (h *Handler) ListExports(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if _, err := h.editor.State(id); err != nil {
		return err
	}
	recs, err := h.history.ListBySession(c.UserContext(), id)
	if err != nil {
		slog.Error("list exports", "session_id", id, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "unable to list exports")
	}
	return c.JSON(recs)
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

func sectionParams(c *fiber.Ctx) (uuid.UUID, model.SectionName, error) {
	id, err := sessionID(c)
	if err != nil {
		return uuid.Nil, "", err
	}
	section, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, section, nil
}

func respond(c *fiber.Ctx) func(usecase.SessionState, error) error {
	return func(st usecase.SessionState, err error) error {
		if err != nil {
			return err
		}
		return c.JSON(st)
	}
}

func sendHTML(c *fiber.Ctx, html string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
