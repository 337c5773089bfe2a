package ui

// areaIcons maps known task areas to a display glyph. The lookup is
// fixed; anything not listed falls back to defaultAreaIcon.
var areaIcons = map[string]string{
	"Global":       "🌍",
	"Lumbridge":    "🏰",
	"Varrock":      "🏛",
	"Falador":      "⚒",
	"Ardougne":     "🏪",
	"Karamja":      "🌴",
	"Desert":       "🏜",
	"Al Kharid":    "🏜",
	"Menaphos":     "🐪",
	"Morytania":    "🦇",
	"Fremennik":    "⛵",
	"Tirannwn":     "🌲",
	"Prifddinas":   "💎",
	"Wilderness":   "💀",
	"Daemonheim":   "🗝",
	"Anachronia":   "🦖",
	"Taverley":     "🐺",
	"Burthorpe":    "🛡",
	"Kandarin":     "🌾",
	"Asgarnia":     "⚔",
	"Misthalin":    "📜",
	"Gielinor":     "🌍",
}

const defaultAreaIcon = "📍"

// areaIcon returns the glyph for an area, or the default glyph when the
// area has no mapping.
func areaIcon(area string) string {
	if icon, ok := areaIcons[area]; ok {
		return icon
	}
	return defaultAreaIcon
}
