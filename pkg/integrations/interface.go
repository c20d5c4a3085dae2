package integrations

import "github.com/kerbaras/gita/pkg/data"

// Sharer hands a verse to something outside the app.
type Sharer interface {
	Share(verse data.Verse) error
}
