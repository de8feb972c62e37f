package usecase

import (
	"context"
	"errors"
	"testing"

	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store/memory"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/log"
)

func newTestUseCase() checklist.UseCase {
	return New(log.NewNop(), memory.New())
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	sc := model.Scope{Role: model.RoleUser}

	created, err := uc.Create(ctx, sc, checklist.Input{Items: []checklist.ItemInput{{ID: "greet", Title: "Greeting"}}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.Name != checklist.DefaultName || created.Version != checklist.DefaultVersion {
		t.Errorf("created = %+v", created)
	}

	updated, err := uc.Update(ctx, sc, created.ID, checklist.Input{Name: "Renamed", Items: []checklist.ItemInput{{ID: "x", Title: "X"}}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Renamed" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("updated = %+v", updated)
	}

	list, err := uc.List(ctx, sc)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %v, %v", list, err)
	}

	if err := uc.Delete(ctx, sc, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Get(ctx, sc, created.ID); !errors.Is(err, checklist.ErrChecklistNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
	if err := uc.Delete(ctx, sc, created.ID); !errors.Is(err, checklist.ErrChecklistNotFound) {
		t.Errorf("second Delete = %v", err)
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	_, err := newTestUseCase().Create(context.Background(), model.Scope{}, checklist.Input{Name: "empty"})
	if !pkgErrors.IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestUpload(t *testing.T) {
	uc := newTestUseCase()
	out, err := uc.Upload(context.Background(), model.Scope{}, checklist.UploadInput{
		FileName: "script.txt",
		Data:     []byte("# Script\n- Greet\n- Close\n"),
		Version:  "2",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if out.Name != "Script" || out.Version != "2" || len(out.Items) != 2 {
		t.Errorf("out = %+v", out)
	}
}
