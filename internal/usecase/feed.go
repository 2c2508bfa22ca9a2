package usecase

import (
	"fmt"
	"io"
)

// RenderFeed writes feed entries to out, one per line, in order.
func RenderFeed(out io.Writer, feed []string) error {
	for _, entry := range feed {
		if _, err := fmt.Fprintln(out, entry); err != nil {
			return fmt.Errorf("render feed: %w", err)
		}
	}
	return nil
}
