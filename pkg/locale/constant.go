package locale

const (
	// EN is English.
	EN = "en"
	// RU is Russian.
	RU = "ru"
)

// LangList contains all supported language codes.
var LangList = []string{EN, RU}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// Locale is the context key holding the request language.
type Locale struct{}
