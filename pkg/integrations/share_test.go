package integrations

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kerbaras/gita/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sharedVerse = data.Verse{
	ID: "2-47", Chapter: 2, Verse: 47,
	Sanskrit:   "कर्मण्येवाधिकारस्ते",
	English:    "You have a right to perform your duties",
	Reflection: "Focus on the effort.",
}

func TestShareMessage(t *testing.T) {
	want := "📿 Bhagavad Gita 2:47\n\n" +
		"\"कर्मण्येवाधिकारस्ते\"\n\n" +
		"\"You have a right to perform your duties\"\n\n" +
		"💭 Focus on the effort.\n\n" +
		"— Shared from Gita Today"

	assert.Equal(t, want, ShareMessage(sharedVerse))
}

func TestClipboardSharer(t *testing.T) {
	var copied string
	sharer := &ClipboardSharer{write: func(s string) error {
		copied = s
		return nil
	}}

	require.NoError(t, sharer.Share(sharedVerse))
	assert.Equal(t, ShareMessage(sharedVerse), copied)
}

func TestClipboardSharerFailure(t *testing.T) {
	sharer := &ClipboardSharer{write: func(string) error {
		return errors.New("no display")
	}}

	err := sharer.Share(sharedVerse)
	assert.ErrorIs(t, err, ErrShareFailed)
	assert.Contains(t, err.Error(), "no display")
}

func TestWriterSharer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriterSharer(&buf).Share(sharedVerse))
	assert.Equal(t, ShareMessage(sharedVerse)+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriterSharerFailure(t *testing.T) {
	err := NewWriterSharer(failingWriter{}).Share(sharedVerse)
	assert.ErrorIs(t, err, ErrShareFailed)
}

func TestSharersImplementInterface(t *testing.T) {
	var _ Sharer = NewClipboardSharer()
	var _ Sharer = NewWriterSharer(&bytes.Buffer{})
}
