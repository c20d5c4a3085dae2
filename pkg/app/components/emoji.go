package components

// DefaultTagEmoji is shown for tags without their own glyph.
const DefaultTagEmoji = "📿"

var tagEmojis = map[string]string{
	"Action":           "⚡",
	"Karma Yoga":       "🎯",
	"Work":             "💼",
	"Anxiety":          "😰",
	"Career":           "📈",
	"Patience":         "🧘",
	"Emotions":         "💭",
	"Mindfulness":      "🧠",
	"Self-doubt":       "🤔",
	"Desire":           "💫",
	"Attachment":       "🔗",
	"Relationships":    "❤️",
	"Self-control":     "🛡️",
	"Leadership":       "👑",
	"Responsibility":   "✨",
	"Influence":        "🌟",
	"Faith":            "🙏",
	"Hope":             "🌈",
	"Purpose":          "🎯",
	"Spirituality":     "☸️",
	"Difficult Times":  "🌧️",
	"Self-improvement": "📚",
	"Mental Health":    "💚",
	"Motivation":       "🔥",
	"Personal Growth":  "🌱",
	"Trust":            "🤝",
	"Surrender":        "🕊️",
	"Peace":            "☮️",
	"Contentment":      "😊",
	"Liberation":       "🦋",
	"Fear":             "😨",
	"Death":            "🌑",
	"Change":           "🔄",
	"Transition":       "➡️",
	"Loss":             "💔",
	"Grief":            "😢",
	"Identity":         "🪞",
	"Authenticity":     "💎",
	"Mind":             "🧠",
	"Meditation":       "🧘‍♂️",
	"Focus":            "🎯",
}

// TagEmoji returns the glyph for tag, or DefaultTagEmoji.
func TagEmoji(tag string) string {
	if e, ok := tagEmojis[tag]; ok {
		return e
	}
	return DefaultTagEmoji
}

// TagLabel is the tag prefixed with its glyph.
func TagLabel(tag string) string {
	return TagEmoji(tag) + " " + tag
}
