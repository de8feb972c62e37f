package analysis

import (
	"strings"
	"testing"

	"callaudit-srv/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	tr := model.Transcript{Source: model.SourceCall, Text: "  Hello, this is Alex from SalesCo.  "}

	tests := []struct {
		name      string
		checklist model.Checklist
		lang      string
		want      []string
		notWant   []string
	}{
		{
			name:      "simple english",
			checklist: simpleChecklist(),
			lang:      "en",
			want:      []string{`"id":"greet"`, `"type":"prohibited"`, "in English", "score is in [0,1]", "Hello, this is Alex from SalesCo.\n"},
			notWant:   []string{`"MAX"`},
		},
		{
			name:      "advanced russian",
			checklist: advancedChecklist(),
			lang:      "ru",
			want:      []string{`"id":"1"`, `"weight":6`, `"binary":true`, "in Russian", "Binary criteria accept only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPrompt(tt.checklist, tr, tt.lang)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("prompt missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("prompt contains %q", w)
				}
			}
			if got != BuildPrompt(tt.checklist, tr, tt.lang) {
				t.Error("prompt is not deterministic")
			}
		})
	}
}

func TestBuildPromptCorrespondence(t *testing.T) {
	got := BuildPrompt(simpleChecklist(), model.Transcript{Source: model.SourceCorrespondence, Text: "hi"}, "")
	if !strings.Contains(got, "written correspondence") {
		t.Error("prompt does not mention correspondence")
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StatePending, StatePromptBuilt, true},
		{StatePromptBuilt, StateProviderCalled, true},
		{StateProviderCalled, StateParseFailed, true},
		{StateParseFailed, StateFailed, true},
		{StateReconciled, StatePersisted, true},
		{StatePending, StatePersisted, false},
		{StatePersisted, StateFailed, false},
		{StateParseFailed, StateReconciled, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
	if !StatePersisted.IsTerminal() || !StateFailed.IsTerminal() || StatePending.IsTerminal() {
		t.Error("unexpected terminal states")
	}
}
