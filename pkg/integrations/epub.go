package integrations

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/gita/pkg/data"
	"github.com/yuin/goldmark"
)

var ErrNoFavorites = errors.New("no saved verses to export")

const bookTitle = "Gita Today - Saved Verses"

type EPubBuilder struct {
	cover *CoverRenderer
}

func NewEPubBuilder(mode data.ThemeMode) *EPubBuilder {
	return NewEPubBuilderWithCover(DefaultCoverSettings(mode))
}

func NewEPubBuilderWithCover(settings CoverSettings) *EPubBuilder {
	return &EPubBuilder{cover: NewCoverRenderer(settings)}
}

// CreateEPub writes the saved verses, most recent first, to outputPath and
// returns the path written. A directory path gets a default file name.
func (p *EPubBuilder) CreateEPub(favorites []data.FavoriteVerse, outputPath string) (string, error) {
	if len(favorites) == 0 {
		return "", ErrNoFavorites
	}

	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, sanitizeFilename(bookTitle)+".epub")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(bookTitle)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor("Gita Today")
	e.SetDescription(fmt.Sprintf("%d verses of the Bhagavad Gita saved for reflection", len(favorites)))
	e.SetLang("en")

	workDir, err := os.MkdirTemp("", "gita-epub-*")
	if err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := p.addCover(e, workDir, len(favorites)); err != nil {
		return "", err
	}

	for _, fav := range favorites {
		title := "Bhagavad Gita " + fav.Reference()
		body, err := sectionHTML(fav)
		if err != nil {
			return "", err
		}
		if _, err := e.AddSection(body, title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add verse %s: %w", fav.ID, err)
		}
	}

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func (p *EPubBuilder) addCover(e *epub.Epub, workDir string, count int) error {
	png, err := p.cover.Render("BHAGAVAD GITA", "Saved Verses", fmt.Sprintf("%d verses", count))
	if err != nil {
		return err
	}

	coverPath := filepath.Join(workDir, "cover.png")
	if err := os.WriteFile(coverPath, png, 0644); err != nil {
		return fmt.Errorf("failed to write cover: %w", err)
	}

	internalPath, err := e.AddImage(coverPath, "cover.png")
	if err != nil {
		return fmt.Errorf("failed to add cover: %w", err)
	}
	e.SetCover(internalPath, "")
	return nil
}

// sectionMarkdown lays a verse out the way the verse card does.
func sectionMarkdown(fav data.FavoriteVerse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bhagavad Gita %s\n\n", fav.Reference())
	if fav.Sanskrit != "" {
		fmt.Fprintf(&b, "*%s*\n\n", escapeMarkdown(fav.Sanskrit))
	}
	fmt.Fprintf(&b, "> \u201c%s\u201d\n\n", escapeMarkdown(fav.English))
	if fav.Reflection != "" {
		fmt.Fprintf(&b, "## Reflection\n\n%s\n\n", escapeMarkdown(fav.Reflection))
	}
	if len(fav.Tags) > 0 {
		fmt.Fprintf(&b, "_%s_\n\n", escapeMarkdown(strings.Join(fav.Tags, " \u00b7 ")))
	}
	if !fav.SavedAt.IsZero() {
		fmt.Fprintf(&b, "Saved %s\n", fav.SavedAt.Format("Jan 2, 2006"))
	}
	return b.String()
}

func sectionHTML(fav data.FavoriteVerse) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(sectionMarkdown(fav)), &buf); err != nil {
		return "", fmt.Errorf("failed to render verse %s: %w", fav.ID, err)
	}
	return buf.String(), nil
}

// escapeMarkdown backslash-escapes ASCII punctuation so catalog text is
// rendered literally.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune("\\`*_{}[]<>()#+-.!|~", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
