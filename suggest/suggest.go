// Package suggest proposes tags for untagged lines using a Gemini model.
// Suggestions are advisory: nothing here mutates the sheet, the user
// still assigns tags in the interactive session.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jdoucet/csvt"
)

const systemPrompt = `You categorize bank statement lines.
For each line you are given its fields and the list of tags already in use.
Answer with one single tag: reuse an existing tag whenever one fits,
otherwise invent a short lowercase one. Answer with the tag only, no
punctuation, no explanation.`

// Suggester holds one chat session with the model, so that earlier
// answers keep later ones consistent across a sheet.
type Suggester struct {
	Model string
	chat  *genai.Chat
}

// New returns a Suggester for the given model name.
func New(model string) *Suggester {
	return &Suggester{Model: model}
}

// Start creates the chat session with the tagging instructions.
func (s *Suggester) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, s.Model, config, nil)
	if err != nil {
		return err
	}
	s.chat = chat
	return nil
}

// Suggest returns a tag for the line. The tags already used in the sheet
// are offered to the model first; it may still answer with a new one.
func (s *Suggester) Suggest(ctx context.Context, l *csvt.Line, known []string) (string, error) {
	resp, err := s.chat.Send(ctx, &genai.Part{Text: Question(l, known)})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no suggestion from model %s", s.Model)
	}
	tag := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if i := strings.IndexByte(tag, '\n'); i >= 0 {
		tag = strings.TrimSpace(tag[:i])
	}
	if tag == "" {
		return "", fmt.Errorf("empty suggestion from model %s", s.Model)
	}
	return tag, nil
}

// Question renders one line as a prompt for the model.
func Question(l *csvt.Line, known []string) string {
	var b strings.Builder
	if len(known) > 0 {
		fmt.Fprintf(&b, "Tags in use: %s\n", strings.Join(known, ", "))
	}
	for name, value := range l.Infos {
		fmt.Fprintf(&b, "%s: %s\n", name, value)
	}
	for name, d := range l.Dates {
		fmt.Fprintf(&b, "%s: %s\n", name, d)
	}
	fmt.Fprintf(&b, "debit: %s, credit: %s\n", l.Debit, l.Credit)
	b.WriteString("Tag?")
	return b.String()
}
