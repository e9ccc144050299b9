// Package input resolves CLI arguments that may name a file or carry the
// text directly.
package input

import "os"

// DefaultSystemPrompt seeds the conversation when --prompt is not given.
const DefaultSystemPrompt = "You are an AI assistant that helps people find information."

// Resolve tries arg as a file path first; if the file cannot be read for
// any reason the argument itself is the text. The fallback is silent.
func Resolve(arg string) string {
	data, err := os.ReadFile(arg)
	if err != nil {
		return arg
	}
	return string(data)
}
