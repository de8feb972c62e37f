package report

import (
	"context"
	"os"

	"callaudit-srv/internal/model"
	"callaudit-srv/pkg/log"
)

// Renderer turns stored analyses into downloadable documents.
//
//go:generate mockery --name Renderer
type Renderer interface {
	Markdown(a model.Analysis) []byte
	PDF(a model.Analysis) ([]byte, error)
}

// Config configures the PDF output.
type Config struct {
	// FontPath is an optional TrueType font with Cyrillic glyphs.
	FontPath string
}

type implRenderer struct {
	font []byte
}

// New creates a Renderer. An unreadable font is logged and the core font is used instead.
func New(l log.Logger, cfg Config) Renderer {
	r := &implRenderer{}
	if cfg.FontPath == "" {
		return r
	}
	font, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		l.Warnf(context.Background(), "report.New: font %s: %v, falling back to Helvetica", cfg.FontPath, err)
		return r
	}
	r.font = font
	return r
}

func (r *implRenderer) Markdown(a model.Analysis) []byte {
	return Markdown(BuildDocument(a))
}

func (r *implRenderer) PDF(a model.Analysis) ([]byte, error) {
	return PDF(BuildDocument(a), r.font)
}
