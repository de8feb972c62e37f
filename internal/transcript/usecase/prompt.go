package usecase

import (
	"fmt"

	"callaudit-srv/pkg/locale"
)

const transcribePrompt = `Transcribe this sales or support phone call verbatim.
Rules:
- Output plain text only, no Markdown, no commentary.
- Start every speaker turn on a new line as "<Speaker>: <text>".
- Use "Manager" for the company representative and "Client" for the customer.
- Keep the original language of the conversation, do not translate.
- If a fragment is inaudible write [inaudible].
%s`

func buildTranscribePrompt(language string) string {
	hint := ""
	switch language {
	case "":
	case locale.RU:
		hint = "The conversation is expected to be in Russian."
	case locale.EN:
		hint = "The conversation is expected to be in English."
	default:
		hint = fmt.Sprintf("The conversation is expected to be in language %q.", language)
	}
	return fmt.Sprintf(transcribePrompt, hint)
}
