package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/locale"
	"resume-builder/internal/render"
	"resume-builder/internal/style"
	"resume-builder/internal/usecase"
)

type stubPDF struct{ err error }

func (s stubPDF) RenderHTMLToPDF(context.Context, string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.7 stub"), nil
}

type stubDOCX struct{}

func (stubDOCX) RenderHTMLToDOCX(context.Context, string) ([]byte, error) {
	return []byte("PK stub"), nil
}

type stubHistory struct{ recs []domain.ExportRecord }

func (s *stubHistory) Save(_ context.Context, rec *domain.ExportRecord) error {
	s.recs = append(s.recs, *rec)
	return nil
}

func (s *stubHistory) ListBySession(_ context.Context, id uuid.UUID) ([]domain.ExportRecord, error) {
	out := []domain.ExportRecord{}
	for _, r := range s.recs {
		if r.SessionID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func newApp(t *testing.T, pdf usecase.PDFRenderer) *fiber.App {
	t.Helper()
	locales, err := locale.NewTable()
	require.NoError(t, err)
	set, err := render.NewSet(style.Default(), locales)
	require.NoError(t, err)

	history := &stubHistory{}
	editor := usecase.NewEditor(set, usecase.NewStore(), style.Modern, locale.English)
	exporter := usecase.NewExporter(pdf, stubDOCX{}, history, 0)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	NewHandler(editor, exporter, history).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func createSession(t *testing.T, app *fiber.App, body string) usecase.SessionState {
	t.Helper()
	resp, out := do(t, app, http.MethodPost, "/sessions", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, out)
	var st usecase.SessionState
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	return st
}

func TestListStyles(t *testing.T) {
	app := newApp(t, stubPDF{})
	resp, body := do(t, app, http.MethodGet, "/styles", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var styles []styleResp
	require.NoError(t, json.Unmarshal([]byte(body), &styles))
	require.Len(t, styles, 3)
	assert.Equal(t, "1", styles[0].ID)
	assert.True(t, styles[1].Features.HasAchievements)
	assert.Nil(t, styles[0].Defaults)

	resp, body = do(t, app, http.MethodGet, "/styles/2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "David Anderson")

	resp, body = do(t, app, http.MethodGet, "/styles/3", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `unknown style: \"3\"`)
}

func TestPreviewStyle(t *testing.T) {
	app := newApp(t, stubPDF{})
	resp, body := do(t, app, http.MethodGet, "/styles/4/preview?lang=AR", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `dir="rtl"`)
}

func TestSessionLifecycle(t *testing.T) {
	app := newApp(t, stubPDF{})
	st := createSession(t, app, `{"styleId":"2","language":"FR"}`)
	assert.Equal(t, "2", st.StyleID)
	base := "/sessions/" + st.ID.String()

	resp, _ := do(t, app, http.MethodPatch, base+"/personal", `{"field":"name","value":"Ada Lovelace"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, app, http.MethodGet, base+"/preview", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, `lang="fr"`)

	resp, body = do(t, app, http.MethodPost, base+"/sections/achievements", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, body = do(t, app, http.MethodPatch, base+"/sections/achievements/1", `{"field":"title","value":"Golden Pen"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, "Golden Pen")

	resp, _ = do(t, app, http.MethodPatch, base+"/sections/experience/0", `{"description":["a","b"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, base+"/sections/achievements/0", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, app, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "David Anderson")

	resp, _ = do(t, app, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestErrorMapping(t *testing.T) {
	app := newApp(t, stubPDF{})
	st := createSession(t, app, "")
	base := "/sessions/" + st.ID.String()

	cases := []struct {
		name, method, path, body string
		code                     int
	}{
		{"bad id", http.MethodGet, "/sessions/nope", "", http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/sessions/" + uuid.NewString(), "", http.StatusNotFound},
		{"unknown style", http.MethodPut, base + "/style", `{"styleId":"3"}`, http.StatusNotFound},
		{"unknown section", http.MethodPost, base + "/sections/hobbies", "", http.StatusBadRequest},
		{"disabled section", http.MethodPost, base + "/sections/references", "", http.StatusConflict},
		{"out of range", http.MethodDelete, base + "/sections/skills/42", "", http.StatusBadRequest},
		{"unknown field", http.MethodPatch, base + "/personal", `{"field":"age","value":"3"}`, http.StatusBadRequest},
		{"bad document", http.MethodPut, base + "/resume", `{"skills":"many"}`, http.StatusBadRequest},
		{"bad format", http.MethodPost, base + "/export/odt", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, app, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.code, resp.StatusCode, body)
			assert.Contains(t, body, `"error"`)
		})
	}
}

func TestReplaceResume(t *testing.T) {
	app := newApp(t, stubPDF{})
	st := createSession(t, app, `{"styleId":"1"}`)

	doc := `{"personalInfo":{"name":"Grace Hopper"},"skills":[{"name":"COBOL","level":"Expert"}],"achievements":null}`
	resp, body := do(t, app, http.MethodPut, "/sessions/"+st.ID.String()+"/resume", doc)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, "Grace Hopper")
	assert.Contains(t, body, "COBOL")
}

func TestExportAndHistory(t *testing.T) {
	app := newApp(t, stubPDF{})
	st := createSession(t, app, `{"styleId":"1"}`)
	base := "/sessions/" + st.ID.String()

	resp, body := do(t, app, http.MethodPost, base+"/export/pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "_Resume.pdf")
	assert.True(t, strings.HasPrefix(body, "%PDF"))

	resp, _ = do(t, app, http.MethodPost, base+"/export/docx", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "_Resume.docx")

	resp, body = do(t, app, http.MethodGet, base+"/exports", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs []domain.ExportRecord
	require.NoError(t, json.Unmarshal([]byte(body), &recs))
	assert.Len(t, recs, 2)
}

func TestExportFailureMessage(t *testing.T) {
	app := newApp(t, stubPDF{err: errors.New("chrome missing")})
	st := createSession(t, app, "")

	resp, body := do(t, app, http.MethodPost, "/sessions/"+st.ID.String()+"/export/pdf", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Failed to generate PDF. Please try DOCX instead.")
	assert.NotContains(t, body, "chrome missing")
}

func TestPrint(t *testing.T) {
	app := newApp(t, stubPDF{})
	st := createSession(t, app, "")
	resp, body := do(t, app, http.MethodGet, "/sessions/"+st.ID.String()+"/print", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "window.print()")
	assert.Contains(t, body, "Michael Stevens")
}

func TestErrorHandlerNoSurface(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error { return usecase.ErrNoSurface })

	resp, body := do(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
}
