package usecase

import (
	"context"
	"errors"
	"strings"

	"callaudit-srv/internal/analysis"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
	"callaudit-srv/pkg/paginator"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Analysis, error) {
	a, err := uc.store.GetAnalysis(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Analysis{}, analysis.ErrAnalysisNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Get: %v", err)
		return model.Analysis{}, err
	}
	return a, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input analysis.ListInput) (analysis.ListOutput, error) {
	q := input.Paginate
	q.Adjust()

	list, total, err := uc.store.ListAnalyses(ctx, store.ListAnalysesOptions{
		ManagerID:   strings.TrimSpace(input.ManagerID),
		ChecklistID: strings.TrimSpace(input.ChecklistID),
		Limit:       q.Limit,
		Offset:      q.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.List: %v", err)
		return analysis.ListOutput{}, err
	}
	if list == nil {
		list = []model.Analysis{}
	}

	return analysis.ListOutput{
		Analyses:  list,
		Paginator: paginator.New(q, total, int64(len(list))),
	}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.store.DeleteAnalysis(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return analysis.ErrAnalysisNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "analysis.usecase.Delete: id=%s", id)
	return nil
}
