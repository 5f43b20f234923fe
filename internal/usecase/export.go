package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/metrics"
)

type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type DOCXRenderer interface {
	RenderHTMLToDOCX(ctx context.Context, html string) ([]byte, error)
}

type ExportsRepo interface {
	Save(ctx context.Context, rec *domain.ExportRecord) error
}

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var (
	// ErrNoSurface means there is no rendered document to export or print.
	ErrNoSurface     = errors.New("no rendered document")
	ErrUnknownFormat = errors.New("unknown export format")
	errNotPDF        = errors.New("converter output is not a PDF")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPDF, FormatDOCX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// Artifact is an exported file.
type Artifact struct {
	Format   Format
	FileName string
	Data     []byte
}

// Failure is a conversion error together with the message shown to the user.
type Failure struct {
	Format  Format
	Message string
	Err     error
}

func (f *Failure) Error() string { return fmt.Sprintf("export %s: %v", f.Format, f.Err) }

func (f *Failure) Unwrap() error { return f.Err }

var failureMessages = map[Format]string{
	FormatPDF:  "Failed to generate PDF. Please try DOCX instead.",
	FormatDOCX: "Failed to generate DOCX. Please try PDF instead.",
}

// FileName is the download name of an export: the person's name followed by
// "_Resume".
func FileName(base string, f Format) string {
	return base + "_Resume." + string(f)
}

// Exporter converts rendered documents to files. A failed conversion is
// reported once and never retried.
type Exporter struct {
	pdf     PDFRenderer
	docx    DOCXRenderer
	repo    ExportsRepo
	timeout time.Duration
}

func NewExporter(pdf PDFRenderer, docx DOCXRenderer, repo ExportsRepo, timeout time.Duration) *Exporter {
	return &Exporter{pdf: pdf, docx: docx, repo: repo, timeout: timeout}
}

// Export converts snap to format. An empty snapshot yields ErrNoSurface and no
// attempt is made; conversion errors come back as *Failure.
func (x *Exporter) Export(ctx context.Context, snap Snapshot, format Format) (*Artifact, error) {
	if snap.HTML == "" {
		return nil, ErrNoSurface
	}

	convert, err := x.converter(format)
	if err != nil {
		return nil, err
	}

	cctx := ctx
	if x.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	start := time.Now()
	data, err := convert(cctx, snap.HTML)
	metrics.ExportDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	if err == nil && format == FormatPDF && !bytes.HasPrefix(data, []byte("%PDF")) {
		err = errNotPDF
	}

	rec := &domain.ExportRecord{
		ID:        uuid.New(),
		SessionID: snap.SessionID,
		StyleID:   snap.StyleID,
		Language:  snap.Language,
		Format:    string(format),
		FileName:  FileName(snap.FileBase, format),
		CreatedAt: start.UTC(),
	}

	if err != nil {
		slog.Error("export failed", "session_id", snap.SessionID, "format", format, "error", err)
		rec.Status = domain.ExportFailed
		rec.Error = err.Error()
		metrics.Exports.WithLabelValues(string(format), rec.Status).Inc()
		x.record(ctx, rec)
		return nil, &Failure{Format: format, Message: failureMessages[format], Err: err}
	}

	rec.Status = domain.ExportCompleted
	rec.FileSize = len(data)
	metrics.Exports.WithLabelValues(string(format), rec.Status).Inc()
	x.record(ctx, rec)
	slog.Info("export completed", "session_id", snap.SessionID, "format", format,
		"bytes", len(data), "duration", time.Since(start))

	return &Artifact{Format: format, FileName: rec.FileName, Data: data}, nil
}

func (x *Exporter) converter(format Format) (func(context.Context, string) ([]byte, error), error) {
	switch format {
	case FormatPDF:
		if x.pdf != nil {
			return x.pdf.RenderHTMLToPDF, nil
		}
	case FormatDOCX:
		if x.docx != nil {
			return x.docx.RenderHTMLToDOCX, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil, fmt.Errorf("%w: no %s converter configured", ErrUnknownFormat, format)
}

// record saves rec best-effort; the export outcome never depends on it.
func (x *Exporter) record(ctx context.Context, rec *domain.ExportRecord) {
	if x.repo == nil {
		return
	}
	if err := x.repo.Save(context.WithoutCancel(ctx), rec); err != nil {
		slog.Warn("unable to record export (non-fatal)", "export_id", rec.ID, "error", err)
	}
}

const printScript = `<script>window.addEventListener("load", function () { window.print(); });</script>`

// PrintDocument returns html with a hook that opens the print dialog once the
// page has loaded.
func PrintDocument(html string) (string, error) {
	if html == "" {
		return "", ErrNoSurface
	}
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + printScript + html[i:], nil
	}
	return html + printScript, nil
}
