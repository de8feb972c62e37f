package usecase

import (
	"context"
	"fmt"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/model"
)

const (
	contentTypeMarkdown = "text/markdown; charset=utf-8"
	contentTypePDF      = "application/pdf"
)

func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input analysis.ExportInput) (analysis.ExportOutput, error) {
	if input.Format != analysis.FormatMarkdown && input.Format != analysis.FormatPDF {
		return analysis.ExportOutput{}, analysis.ErrUnsupportedFormat
	}

	a, err := uc.Get(ctx, sc, input.ID)
	if err != nil {
		return analysis.ExportOutput{}, err
	}

	if input.Format == analysis.FormatMarkdown {
		return analysis.ExportOutput{
			FileName:    fmt.Sprintf("analysis-%s.md", a.ID),
			ContentType: contentTypeMarkdown,
			Data:        uc.renderer.Markdown(a),
		}, nil
	}

	data, err := uc.renderer.PDF(a)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Export: pdf id=%s: %v", a.ID, err)
		return analysis.ExportOutput{}, err
	}
	return analysis.ExportOutput{
		FileName:    fmt.Sprintf("analysis-%s.pdf", a.ID),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}
