package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

// formFile builds a real multipart header for content.
func formFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

// tempDir points os.CreateTemp at an empty directory the test can inspect.
func tempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	return dir
}

func entries(t *testing.T, dir string) int {
	t.Helper()
	list, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	return len(list)
}

func TestAcquire(t *testing.T) {
	dir := tempDir(t)

	f, err := Acquire(formFile(t, "Checklist.CSV", []byte("id,title\ngreet,Greeting\n")), 1024)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if f.Name != "Checklist.CSV" || f.Ext() != ".csv" || f.Size != 24 {
		t.Errorf("file = %+v ext = %s", f, f.Ext())
	}
	data, err := f.ReadAll()
	if err != nil || !strings.HasPrefix(string(data), "id,title") {
		t.Errorf("ReadAll() = %q, %v", data, err)
	}

	path := f.Path()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("temp file missing before Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present after Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if n := entries(t, dir); n != 0 {
		t.Errorf("temp dir holds %d entries, want 0", n)
	}
}

func TestAcquireTooLarge(t *testing.T) {
	tests := []struct {
		name string
		// declared overrides the header size to reach the copy-time check.
		declared int64
	}{
		{name: "declared size over the limit"},
		{name: "content over the limit", declared: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tempDir(t)
			fh := formFile(t, "big.wav", bytes.Repeat([]byte("x"), 64))
			if tt.declared > 0 {
				fh.Size = tt.declared
			}

			f, err := Acquire(fh, 16)
			if !errors.Is(err, ErrTooLarge) {
				t.Fatalf("Acquire() error = %v, want ErrTooLarge", err)
			}
			if f != nil {
				t.Errorf("file = %+v, want nil", f)
			}
			if n := entries(t, dir); n != 0 {
				t.Errorf("temp dir holds %d entries after a rejected upload", n)
			}
		})
	}
}

func TestAcquireNoLimit(t *testing.T) {
	tempDir(t)
	f, err := Acquire(formFile(t, "a.txt", bytes.Repeat([]byte("x"), 4096)), 0)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer f.Close()
	if f.Size != 4096 {
		t.Errorf("size = %d, want 4096", f.Size)
	}
}

func TestAcquireNilHeader(t *testing.T) {
	if _, err := Acquire(nil, 10); err == nil {
		t.Error("Acquire(nil) error = nil")
	}
}

func TestCloseNil(t *testing.T) {
	var f *File
	if err := f.Close(); err != nil {
		t.Errorf("nil Close() error = %v", err)
	}
}

func TestLimitBody(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", "big.wav")
	_, _ = part.Write(bytes.Repeat([]byte("x"), 2*formOverhead))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	LimitBody(rec, req, 10)
	err := req.ParseMultipartForm(1 << 20)
	if !IsTooLarge(err) {
		t.Fatalf("ParseMultipartForm() error = %v, want a too-large error", err)
	}
}

func TestIsTooLarge(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "sentinel", err: ErrTooLarge, want: true},
		{name: "max bytes", err: &http.MaxBytesError{Limit: 1}, want: true},
		{name: "other", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTooLarge(tt.err); got != tt.want {
				t.Errorf("IsTooLarge(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
