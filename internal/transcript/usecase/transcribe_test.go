package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/model"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/store/memory"
	"callaudit-srv/internal/transcript"
	"callaudit-srv/internal/transcript/repository"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/minio"
)

type fakeGateway struct {
	text  string
	err   error
	calls int
	last  llm.Request
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Text: f.text, Model: "fake", Attempts: 1}, nil
}

func (f *fakeGateway) Model() string { return "fake" }

type fakeUploader struct {
	err  error
	keys []string
}

func (f *fakeUploader) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.keys = append(f.keys, req.ObjectName)
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName}, nil
}

// racingStore hides existing rows from the hash lookup, as when another request
// inserts the same audio between lookup and insert.
type racingStore struct {
	store.Store
}

func (s racingStore) FindTranscriptByHash(ctx context.Context, hash string) (model.Transcript, error) {
	return model.Transcript{}, store.ErrNotFound
}

type failingCache struct{}

func (failingCache) GetTranscriptID(ctx context.Context, hash string) (string, error) {
	return "", errors.New("redis down")
}

func (failingCache) SaveTranscriptID(ctx context.Context, hash, id string, ttl time.Duration) error {
	return errors.New("redis down")
}

type mapCache map[string]string

func (m mapCache) GetTranscriptID(ctx context.Context, hash string) (string, error) {
	id, ok := m[hash]
	if !ok {
		return "", repository.ErrCacheMiss
	}
	return id, nil
}

func (m mapCache) SaveTranscriptID(ctx context.Context, hash, id string, ttl time.Duration) error {
	m[hash] = id
	return nil
}

func newTestUseCase(gw llm.Gateway, up minio.FileUploader, cache repository.CacheRepository) *implUseCase {
	uc := New(log.NewNop(), gw, memory.New(), cache, up, Config{Bucket: "audio"}).(*implUseCase)
	n := 0
	uc.newID = func() string {
		n++
		return "t" + string(rune('0'+n))
	}
	return uc
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{text: "Manager: Hello!\nClient: Hi."}
	up := &fakeUploader{}
	cache := mapCache{}
	uc := newTestUseCase(gw, up, cache)

	input := transcript.TranscribeInput{Audio: []byte("RIFF...."), FileName: "call.wav", Language: "en"}
	out, err := uc.Transcribe(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if out.Cached {
		t.Error("first transcription must not be cached")
	}
	tr := out.Transcript
	if tr.ContentHash != transcript.HashAudio(input.Audio) || len(tr.Segments) != 2 || tr.Source != model.SourceCall {
		t.Errorf("transcript = %+v", tr)
	}
	if tr.AudioObjectKey != "audio/t1/call.wav" || len(up.keys) != 1 {
		t.Errorf("object key = %q, uploads = %v", tr.AudioObjectKey, up.keys)
	}
	if gw.last.AudioMIME != "audio/wav" || len(gw.last.Audio) == 0 {
		t.Errorf("request = %+v", gw.last)
	}
	if cache[tr.ContentHash] != tr.ID {
		t.Errorf("cache not warmed: %v", cache)
	}

	again, err := uc.Transcribe(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Cached || again.Transcript.ID != tr.ID || gw.calls != 1 {
		t.Errorf("duplicate audio: cached=%v id=%s calls=%d", again.Cached, again.Transcript.ID, gw.calls)
	}
}

func TestTranscribePersistsArchiveKey(t *testing.T) {
	ctx := context.Background()
	up := &fakeUploader{}
	uc := newTestUseCase(&fakeGateway{text: "hello"}, up, nil)

	out, err := uc.Transcribe(ctx, model.Scope{}, transcript.TranscribeInput{Audio: []byte("RIFF"), FileName: "call.wav"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := uc.store.GetTranscript(ctx, out.Transcript.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.AudioObjectKey != "audio/t1/call.wav" {
		t.Errorf("stored key = %q, want audio/t1/call.wav", got.AudioObjectKey)
	}
}

func TestTranscribeLosesInsertRace(t *testing.T) {
	ctx := context.Background()
	audio := []byte("RIFF....")
	mem := memory.New()
	if _, err := mem.CreateTranscript(ctx, store.CreateTranscriptOptions{Transcript: model.Transcript{
		ID:             "old",
		ContentHash:    transcript.HashAudio(audio),
		Text:           "earlier",
		AudioObjectKey: "audio/old/call.wav",
	}}); err != nil {
		t.Fatal(err)
	}

	up := &fakeUploader{}
	gw := &fakeGateway{text: "hello"}
	uc := New(log.NewNop(), gw, racingStore{mem}, nil, up, Config{Bucket: "audio"}).(*implUseCase)
	uc.newID = func() string { return "new" }

	out, err := uc.Transcribe(ctx, model.Scope{}, transcript.TranscribeInput{Audio: audio, FileName: "call.wav"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Transcript.ID != "old" || !out.Cached {
		t.Errorf("out = %+v, want the existing row", out)
	}
	if len(up.keys) != 0 {
		t.Errorf("uploads = %v, want none for a transcript that was not stored", up.keys)
	}
	if out.Transcript.AudioObjectKey != "audio/old/call.wav" {
		t.Errorf("key = %q", out.Transcript.AudioObjectKey)
	}
}

func TestTranscribeCacheFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{text: "hello"}
	uc := newTestUseCase(gw, nil, failingCache{})
	input := transcript.TranscribeInput{Audio: []byte("abc"), FileName: "a.mp3"}

	first, err := uc.Transcribe(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	second, err := uc.Transcribe(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatal(err)
	}
	if second.Transcript.ID != first.Transcript.ID || gw.calls != 1 {
		t.Errorf("second = %+v calls = %d, want store fallback", second, gw.calls)
	}
}

func TestTranscribeStoreLookupWithoutCache(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{text: "text"}
	uc := newTestUseCase(gw, nil, nil)
	input := transcript.TranscribeInput{Audio: []byte("abc"), FileName: "a.mp3"}

	first, err := uc.Transcribe(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatal(err)
	}
	if first.Transcript.AudioObjectKey != "" {
		t.Errorf("no uploader, key = %q", first.Transcript.AudioObjectKey)
	}
	second, err := uc.Transcribe(ctx, model.Scope{}, input)
	if err != nil {
		t.Fatal(err)
	}
	if second.Transcript.ID != first.Transcript.ID || gw.calls != 1 {
		t.Errorf("second = %+v calls = %d", second, gw.calls)
	}
}

func TestTranscribeErrors(t *testing.T) {
	tests := []struct {
		name    string
		gw      *fakeGateway
		up      *fakeUploader
		input   transcript.TranscribeInput
		wantErr error
		wantOK  bool
	}{
		{
			name:    "unsupported format",
			gw:      &fakeGateway{text: "x"},
			input:   transcript.TranscribeInput{Audio: []byte("x"), FileName: "notes.txt", MIME: "text/plain"},
			wantErr: transcript.ErrUnsupportedAudio,
		},
		{
			name:    "empty audio",
			gw:      &fakeGateway{text: "x"},
			input:   transcript.TranscribeInput{FileName: "a.mp3"},
			wantErr: transcript.ErrEmptyAudio,
		},
		{
			name:    "empty model output",
			gw:      &fakeGateway{text: "  \n"},
			input:   transcript.TranscribeInput{Audio: []byte("x"), FileName: "a.mp3"},
			wantErr: transcript.ErrTranscriptionFailed,
		},
		{
			name:    "provider failure",
			gw:      &fakeGateway{err: &llm.ProviderError{Attempts: 3, LastStatus: 503}},
			input:   transcript.TranscribeInput{Audio: []byte("x"), FileName: "a.mp3"},
			wantErr: transcript.ErrTranscriptionFailed,
		},
		{
			name:    "missing configuration",
			gw:      &fakeGateway{err: llm.ErrConfiguration},
			input:   transcript.TranscribeInput{Audio: []byte("x"), FileName: "a.mp3"},
			wantErr: llm.ErrConfiguration,
		},
		{
			name:   "archive failure is ignored",
			gw:     &fakeGateway{text: "ok"},
			up:     &fakeUploader{err: errors.New("minio down")},
			input:  transcript.TranscribeInput{Audio: []byte("x"), FileName: "a.mp3"},
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var up minio.FileUploader
			if tt.up != nil {
				up = tt.up
			}
			uc := newTestUseCase(tt.gw, up, nil)
			out, err := uc.Transcribe(context.Background(), model.Scope{}, tt.input)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Transcript.AudioObjectKey != "" {
					t.Errorf("failed archive must leave key empty, got %q", out.Transcript.AudioObjectKey)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromText(t *testing.T) {
	uc := newTestUseCase(&fakeGateway{}, nil, nil)

	if _, err := uc.FromText(context.Background(), transcript.FromTextInput{Text: "  \n\t"}); !pkgErrors.IsValidation(err) {
		t.Errorf("blank text error = %v", err)
	}
	if _, err := uc.FromText(context.Background(), transcript.FromTextInput{Text: "x", Source: "fax"}); !pkgErrors.IsValidation(err) {
		t.Errorf("bad source error = %v", err)
	}

	tr, err := uc.FromText(context.Background(), transcript.FromTextInput{Text: " Client: hi ", Source: model.SourceCorrespondence, Language: "ru"})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Text != "Client: hi" || tr.Source != model.SourceCorrespondence || tr.ContentHash != transcript.HashText(model.SourceCorrespondence, "Client: hi") {
		t.Errorf("transcript = %+v", tr)
	}
}
