package cmd

import (
	"fmt"
	"io"
)

const binaryName = "actionitems"

// writeUsage prints the short usage block shown on bad argument shapes.
func writeUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [--prompt <prompt_file_or_text>] <input_file_or_text>\n", binaryName)
	fmt.Fprintf(w, "       %s --delete-keys    # to delete stored credentials\n", binaryName)
	fmt.Fprintf(w, "       %s --help           # show detailed help\n", binaryName)
}

// writeHelp prints the full help, including the credentials explanation.
func writeHelp(w io.Writer) {
	fmt.Fprintln(w, "AI Command Line Tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintf(w, "    %s [--prompt <prompt_file_or_text>] <input_file_or_text>\n", binaryName)
	fmt.Fprintf(w, "    %s --delete-keys\n", binaryName)
	fmt.Fprintf(w, "    %s --help\n", binaryName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DESCRIPTION:")
	fmt.Fprintln(w, "    A command line tool for interacting with Azure OpenAI services.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	fmt.Fprintln(w, "    --prompt <prompt_file_or_text>  Specify system prompt from file or direct text")
	fmt.Fprintln(w, "                                    If not provided, defaults to general assistance")
	fmt.Fprintln(w, "    --delete-keys                   Delete all stored credentials")
	fmt.Fprintln(w, "    --help, -h                      Display this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ARGUMENTS:")
	fmt.Fprintln(w, "    <input_file_or_text>            Input to process - either a file path or direct text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CREDENTIALS:")
	fmt.Fprintln(w, "    The tool securely stores the following credentials:")
	fmt.Fprintln(w, "    - Azure OpenAI API Key")
	fmt.Fprintln(w, "    - Azure OpenAI Endpoint")
	fmt.Fprintln(w, "    - Azure OpenAI Deployment Name")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    On first launch, you will be prompted to enter these credentials.")
	fmt.Fprintln(w, "    They will be stored securely in the system keyring for future use.")
	fmt.Fprintln(w, "    Use --delete-keys to remove stored credentials.")
}
