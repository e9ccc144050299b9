package azure

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Reply extracts the assistant's reply from a raw response body. ok is
// false when the body does not carry a first-choice text message.
func Reply(body []byte) (reply string, ok bool) {
	v := gjson.GetBytes(body, "choices.0.message.content")
	if v.Type != gjson.String {
		return "", false
	}
	return v.String(), true
}

// IsAuthFailure reports whether body carries the service's authentication
// error. The code field is matched as the string "401" — the service has
// only ever been observed returning it that way.
func IsAuthFailure(body []byte) bool {
	v := gjson.GetBytes(body, "error.code")
	return v.Type == gjson.String && v.String() == "401"
}

// estimateTokens approximates the token count of s at four characters per
// token.
func estimateTokens(s string) int {
	return len(s) / 4
}

// WriteDiagnostic dumps an unrecognized response body to w, prefixed with a
// token estimate for the input that produced it.
func WriteDiagnostic(w io.Writer, body []byte, input string) {
	fmt.Fprintf(w, "Sent approximately %d tokens\n", estimateTokens(input))
	fmt.Fprint(w, "\nRaw API Response:\n\n")
	w.Write(pretty.Pretty(body))
}
