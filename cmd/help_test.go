package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteUsage_ThreeForms(t *testing.T) {
	var out bytes.Buffer
	writeUsage(&out)

	got := out.String()
	for _, want := range []string{
		"Usage: actionitems [--prompt <prompt_file_or_text>] <input_file_or_text>",
		"actionitems --delete-keys",
		"actionitems --help",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("usage missing %q:\n%s", want, got)
		}
	}
	if lines := strings.Count(got, "\n"); lines != 3 {
		t.Errorf("usage has %d lines, want 3", lines)
	}
}

func TestWriteHelp_CredentialsBlock(t *testing.T) {
	var out bytes.Buffer
	writeHelp(&out)

	got := out.String()
	for _, want := range []string{
		"AI Command Line Tool",
		"DESCRIPTION:",
		"OPTIONS:",
		"ARGUMENTS:",
		"CREDENTIALS:",
		"- Azure OpenAI API Key",
		"- Azure OpenAI Endpoint",
		"- Azure OpenAI Deployment Name",
		"Use --delete-keys to remove stored credentials.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("help missing %q", want)
		}
	}
}
