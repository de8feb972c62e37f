package transcript

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"

	"callaudit-srv/internal/model"
)

// HashAudio is the content hash of an audio upload.
func HashAudio(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashText is the content hash of pasted text. The source is part of the hash so
// the same text pasted as a call and as correspondence stays two transcripts.
func HashText(source model.Source, text string) string {
	sum := sha256.Sum256([]byte(string(source) + "\n" + text))
	return hex.EncodeToString(sum[:])
}

// AudioMIME resolves the MIME type of an upload from its extension, then its declared type.
// The second result is false for formats the model does not accept.
func AudioMIME(fileName, declared string) (string, bool) {
	if m, ok := AudioFormats[strings.ToLower(filepath.Ext(fileName))]; ok {
		return m, true
	}
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	for _, m := range AudioFormats {
		if m == declared {
			return m, true
		}
	}
	switch declared {
	case "audio/mp3", "audio/x-wav", "audio/x-m4a", "audio/x-flac", "video/mp4", "video/webm":
		return declared, true
	}
	return "", false
}

var speakerRe = regexp.MustCompile(`^(?:\[[0-9:.\s-]+\]\s*)?([^:\[\]]{1,40}):\s+(.+)$`)

// ParseSegments splits "Speaker: text" lines into segments. Lines without a
// label continue the previous segment.
func ParseSegments(text string) []model.Segment {
	segments := []model.Segment{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := speakerRe.FindStringSubmatch(line); m != nil && len(strings.Fields(m[1])) <= 4 {
			segments = append(segments, model.Segment{
				Speaker: strings.TrimSpace(m[1]),
				Text:    strings.TrimSpace(m[2]),
			})
			continue
		}
		if n := len(segments); n > 0 {
			segments[n-1].Text += " " + line
			continue
		}
		segments = append(segments, model.Segment{Text: line})
	}
	return segments
}
