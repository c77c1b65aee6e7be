package extract

import "strings"

// userMarker identifies a line as user-authored. Lines carry an optional
// timestamp prefix, e.g. "[12:01] User: message text".
const userMarker = "User:"

// UserText pulls the user's side out of a raw conversation and joins it
// into a single space-separated blob, preserving line order. Lines
// without the user marker (assistant turns, system notices) contribute
// nothing; a conversation with no user lines yields "".
func UserText(conversation string) string {
	var parts []string
	for _, line := range strings.Split(conversation, "\n") {
		line = strings.TrimSpace(line)
		_, msg, ok := strings.Cut(line, userMarker)
		if !ok {
			continue
		}
		msg = strings.TrimSpace(msg)
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, " ")
}
