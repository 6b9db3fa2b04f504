package generation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Mode selects the prompt template used for a generation.
type Mode string

const (
	// ModeReport wraps a batch of posts into a sentiment report request.
	ModeReport Mode = "report"

	// ModeRephrase asks for a clearer, more concise version of a paragraph.
	ModeRephrase Mode = "rephrase"
)

const reportInstruction = "Generate a 1-page sentiment analysis report based on 15 Reddit posts " +
	"(topics, descriptions, and comments), do not mention reddit or (according to reddit community) " +
	"anywhere, only write according to social media posts. Do not use * for bold formatting. " +
	"Use ## for section heading.Leave one line after heading and two lines after each section." +
	"Structure: Overview: 3 lines summarizing the context. " +
	"Positive Sentiments: 3 lines summarizing what users liked or valued. " +
	"Negative Sentiments: 3 lines summarizing what users disliked or criticized. " +
	"Conclusion: Show sentiment distribution as %positive, %negative, %neutral, " +
	"followed by a 1-line closing statement." +
	"Make the writing professional, concise, and wonderful to read." +
	"Do not write any extra word other than report content."

const rephraseInstruction = "Rephrase the following paragraph so it reads clearly and concisely. " +
	"Keep the original meaning and do not add any information that is not already present. " +
	"Return only the rephrased paragraph."

// template is a fixed instruction block plus the label that introduces the
// caller's content.
type template struct {
	instruction     string
	contentLabel    string
	disableThinking bool
}

var templates = map[Mode]template{
	ModeReport: {
		instruction:  reportInstruction,
		contentLabel: "6 posts:",
	},
	ModeRephrase: {
		instruction:     rephraseInstruction,
		contentLabel:    "Paragraph:",
		disableThinking: true,
	},
}

// Prompt is a fully rendered prompt and the backend options that go with it.
type Prompt struct {
	Mode            Mode
	Text            string
	DisableThinking bool
}

// Modes returns every supported mode, sorted by name.
func Modes() []Mode {
	modes := lo.Keys(templates)
	slices.Sort(modes)
	return modes
}

// ParseMode resolves a mode name. Matching ignores case and surrounding space.
func ParseMode(name string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := templates[mode]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownMode, name, strings.Join(modeNames(), ", "))
	}
	return mode, nil
}

// BuildPrompt substitutes content into the template for mode. The content is
// inserted verbatim: no trimming, escaping or truncation is applied, and an
// empty string is accepted.
func BuildPrompt(mode Mode, content string) (Prompt, error) {
	tmpl, ok := templates[mode]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}

	var b strings.Builder
	b.Grow(len(tmpl.instruction) + len(tmpl.contentLabel) + len(content) + 3)
	b.WriteString(tmpl.instruction)
	b.WriteString("\n\n")
	b.WriteString(tmpl.contentLabel)
	b.WriteString("\n")
	b.WriteString(content)

	return Prompt{
		Mode:            mode,
		Text:            b.String(),
		DisableThinking: tmpl.disableThinking,
	}, nil
}

func modeNames() []string {
	return lo.Map(Modes(), func(m Mode, _ int) string { return string(m) })
}
