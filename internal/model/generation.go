package model

import "time"

// maxTitleLen is the number of leading characters of the prompt used
// as a generation title before the ellipsis is appended.
const maxTitleLen = 50

// Generation pairs a user's prompt with the markup produced for it.
// Generations are immutable after creation; there is no update path.
type Generation struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Prompt     string    `json:"prompt"`
	HTMLCode   string    `json:"htmlCode"`
	TemplateID *string   `json:"templateId"`
	UserID     string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DeriveTitle derives a generation title from a prompt: the prompt
// verbatim when it fits, otherwise the first 50 characters followed
// by "...". The embedded UI applies the same rule before saving.
func DeriveTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= maxTitleLen {
		return prompt
	}
	return string(runes[:maxTitleLen]) + "..."
}
