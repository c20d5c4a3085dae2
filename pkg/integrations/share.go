package integrations

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/kerbaras/gita/pkg/data"
)

// ErrShareFailed is returned when a verse could not be shared. The UI shows
// ShareFailedNotice and changes nothing else.
var ErrShareFailed = errors.New("share failed")

const ShareFailedNotice = "Unable to share. Please try again."

// ShareMessage formats a verse the way it is shared with other apps.
func ShareMessage(v data.Verse) string {
	return fmt.Sprintf("📿 Bhagavad Gita %d:%d\n\n\"%s\"\n\n\"%s\"\n\n💭 %s\n\n— Shared from Gita Today",
		v.Chapter, v.Verse, v.Sanskrit, v.English, v.Reflection)
}

// ClipboardSharer copies the share message to the system clipboard.
type ClipboardSharer struct {
	write func(string) error
}

func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{write: clipboard.WriteAll}
}

func (c *ClipboardSharer) Share(v data.Verse) error {
	if err := c.write(ShareMessage(v)); err != nil {
		return fmt.Errorf("%w: %v", ErrShareFailed, err)
	}
	return nil
}

// WriterSharer prints the share message, used when the CLI output is piped.
type WriterSharer struct {
	w io.Writer
}

func NewWriterSharer(w io.Writer) *WriterSharer {
	return &WriterSharer{w: w}
}

func (s *WriterSharer) Share(v data.Verse) error {
	if _, err := fmt.Fprintln(s.w, ShareMessage(v)); err != nil {
		return fmt.Errorf("%w: %v", ErrShareFailed, err)
	}
	return nil
}
