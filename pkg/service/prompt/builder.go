package prompt

import (
	"fmt"

	"github.com/m-mizutani/duamind/pkg/model"
)

// SystemInstruction is the fixed instruction sent with every generation
// request, independent of all user parameters.
const SystemInstruction = "Du formulierst islamisch zulässige Bittgebete auf Deutsch. Schreibe nur das Gebet, keine Erklärungen. Halte dich an Qur’an-/Sunnah-konforme Sprache. Keine Politik. Schreibe warm, demütig, klar. Nutze kurze Absätze. Passe Länge und Stil an die Parameter an."

// overrideContent replaces the user content entirely when the safety
// filter triggered.
const overrideContent = "Stichworte: Jemand fühlt sich verzweifelt und braucht Trost. | Thema: Hoffnung | Stil: kurz | Anrede einleiten: true. Formuliere ein sehr kurzes, tröstendes Gebet, das Hoffnung spendet, auf Deutsch, mit Absätzen, ohne Emojis."

const contentFormat = "Stichworte: %s | Thema: %s | Stil: %s | Anrede einleiten: %t. Formatiere als reines Gebet in Deutsch, mit Absätzen, ohne Emojis."

// Request holds the user-supplied generation parameters. It is an
// ephemeral value, never persisted.
type Request struct {
	RawInput   string
	Topic      model.Topic
	Style      model.Style
	WithAnrede bool
}

// Build assembles the outbound (instruction, content) pair. When the
// verdict triggered, topic, style and the anrede flag are ignored and the
// fixed comfort template is requested instead. Pure and deterministic.
func Build(req Request, verdict Verdict) (instruction, content string) {
	if verdict.Triggered {
		return SystemInstruction, overrideContent
	}

	content = fmt.Sprintf(contentFormat, req.RawInput, req.Topic, req.Style, req.WithAnrede)
	return SystemInstruction, content
}
