package host

import "strings"

// Message is the slice of a chat turn plugins may inspect or mutate
type Message struct {
	PlainText string   `json:"text,omitempty"`
	LLMPrompt string   `json:"prompt,omitempty"`
	Context   []string `json:"context,omitempty"`
}

// ModifyLLMPrompt replaces the prompt that will be sent to the model
func (m *Message) ModifyLLMPrompt(prompt string) {
	m.LLMPrompt = prompt
}

// AddContext appends a block the model sees ahead of the prompt
func (m *Message) AddContext(block string) {
	m.Context = append(m.Context, block)
}

// FullPrompt joins context blocks and the prompt as the model receives them
func (m *Message) FullPrompt() string {
	parts := append(append([]string(nil), m.Context...), m.LLMPrompt)
	return strings.Join(parts, "\n\n")
}
