// Command render writes one resume document to a file without the server:
// the style's default data, or a resume JSON file, as HTML, PDF or DOCX.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"resume-builder/internal/locale"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/style"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	var (
		in      = flag.String("in", "", "resume JSON file; empty uses the style's default data")
		styleID = flag.String("style", style.Modern, "style id")
		lang    = flag.String("lang", locale.English, "language code (EN, FR, AR)")
		format  = flag.String("format", "html", "html, pdf or docx")
		out     = flag.String("out", "", "output file; defaults to <name>_Resume.<format>")
		chrome  = flag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome executable for pdf output")
	)
	flag.Parse()

	if err := run(*in, *styleID, *lang, *format, *out, *chrome); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
}

func run(in, styleID, lang, format, out, chrome string) error {
	locales, err := locale.NewTable()
	if err != nil {
		return err
	}
	registry := style.Default()
	st, err := registry.Lookup(styleID)
	if err != nil {
		return err
	}
	set, err := render.NewSet(registry, locales)
	if err != nil {
		return err
	}

	data := st.DefaultData()
	if in != "" {
		b, err := os.ReadFile(in)
		if err != nil {
			return fmt.Errorf("read %s: %w", in, err)
		}
		if data, err = model.DecodeDocument(b); err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}

	html, err := set.Render(styleID, data, lang)
	if err != nil {
		return err
	}

	body := []byte(html)
	name := usecase.FileName(data.PersonalInfo.Name, usecase.Format(format))
	if format != "html" {
		f, err := usecase.ParseFormat(format)
		if err != nil {
			return err
		}
		exporter := usecase.NewExporter(infra.NewChromedpRenderer(chrome), infra.NewDocxRenderer(), nil, 60*time.Second)
		art, err := exporter.Export(context.Background(), usecase.Snapshot{
			StyleID:  styleID,
			Language: lang,
			FileBase: data.PersonalInfo.Name,
			HTML:     html,
		}, f)
		if err != nil {
			return err
		}
		body, name = art.Data, art.FileName
	}

	if out == "" {
		out = name
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	slog.Info("resume written", "file", out, "style", styleID, "language", lang, "bytes", len(body))
	return nil
}
