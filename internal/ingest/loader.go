package ingest

import (
	"fmt"
	"os"
	"strings"
)

// Delimiter separates conversations in the source file, on a line of its
// own.
const Delimiter = "========== Conversation =========="

// LoadConversations reads a transcript file and splits it into raw
// conversation blocks. Blocks are trimmed and empty blocks are dropped;
// conversation IDs are the zero-based positions in the returned slice.
func LoadConversations(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conversations: %w", err)
	}

	var conversations []string
	for _, block := range strings.Split(string(data), Delimiter) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		conversations = append(conversations, block)
	}
	return conversations, nil
}
