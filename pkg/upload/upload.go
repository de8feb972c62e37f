package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrTooLarge is returned when the upload exceeds the configured limit.
var ErrTooLarge = errors.New("upload: file too large")

// formOverhead is the room left for multipart boundaries and the text fields sent with the file.
const formOverhead = 1 << 20

// LimitBody caps the request body before the multipart form is parsed.
// maxBytes <= 0 leaves the body untouched.
func LimitBody(w http.ResponseWriter, r *http.Request, maxBytes int64) {
	if maxBytes <= 0 {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formOverhead)
}

// IsTooLarge reports whether err comes from an upload over the limit.
func IsTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.Is(err, ErrTooLarge) || errors.As(err, &mbe)
}

// File is an uploaded file spooled to a temporary location.
// Close removes the temp file and must be called on every path.
type File struct {
	Name        string
	ContentType string
	Size        int64
	path        string
}

// Acquire copies the multipart file to a temp file. maxBytes <= 0 disables the limit.
func Acquire(fh *multipart.FileHeader, maxBytes int64) (*File, error) {
	if fh == nil {
		return nil, errors.New("upload: no file")
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("upload: open: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "callaudit-*"+strings.ToLower(filepath.Ext(fh.Filename)))
	if err != nil {
		return nil, fmt.Errorf("upload: create temp: %w", err)
	}

	f := &File{
		Name:        filepath.Base(fh.Filename),
		ContentType: fh.Header.Get("Content-Type"),
		path:        tmp.Name(),
	}

	var r io.Reader = src
	if maxBytes > 0 {
		r = io.LimitReader(src, maxBytes+1)
	}
	n, err := io.Copy(tmp, r)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && maxBytes > 0 && n > maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(f.path)
		return nil, err
	}
	f.Size = n
	return f, nil
}

// Ext returns the lower-cased extension including the dot.
func (f *File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Path returns the temp file location.
func (f *File) Path() string {
	return f.path
}

// ReadAll returns the file contents.
func (f *File) ReadAll() ([]byte, error) {
	return os.ReadFile(f.path)
}

// Close removes the temp file. Safe to call more than once.
func (f *File) Close() error {
	if f == nil || f.path == "" {
		return nil
	}
	err := os.Remove(f.path)
	f.path = ""
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
