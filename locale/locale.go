// Package locale maps a language code to its display strings. Pure lookup;
// unknown languages and missing keys fall back to English.
package locale

// Language pairs a code with its self-description for the switcher.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages lists every selectable language.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "as", Name: "Assamese"},
	{Code: "bn", Name: "Bengali"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "hi", Name: "Hindi"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "mr", Name: "Marathi"},
	{Code: "or", Name: "Odia"},
	{Code: "pa", Name: "Punjabi"},
	{Code: "sa", Name: "Sanskrit"},
	{Code: "ta", Name: "Tamil"},
	{Code: "te", Name: "Telugu"},
}

var messagesByLang = map[string]map[string]string{
	"en": {"app.title": "Swami Ayyappa Seva"},
	"hi": {"app.title": "स्वामी अय्यप्पा सेवा"},
	"mr": {"app.title": "स्वामी अय्यप्पा सेवा"},
	"sa": {"app.title": "स्वामी अय्यप्पा सेवा"},
	"bn": {"app.title": "স্বামী অয়্যাপ্পা সেবা"},
	"as": {"app.title": "স্বামী অয়্যাপ্পা সেৱা"},
	"gu": {"app.title": "સ્વામી અય્યપ્પા સેવા"},
	"kn": {"app.title": "ಸ್ವಾಮಿ ಅಯ್ಯಪ್ಪ ಸೇವೆ"},
	"ml": {"app.title": "സ്വാമി അയ്യപ്പ സേവനം"},
	"or": {"app.title": "ସ୍ୱାମୀ ଅୟ୍ୟପ୍ପା ସେବା"},
	"pa": {"app.title": "ਸਵਾਮੀ ਅਯੱਪਾ ਸੇਵਾ"},
	"ta": {"app.title": "ஸ்வாமி அய்யப்பா சேவை"},
	"te": {"app.title": "స్వామి అయ్యప్ప సేవ"},
}

// Supported reports whether the language code is selectable.
func Supported(lang string) bool {
	for _, l := range Languages {
		if l.Code == lang {
			return true
		}
	}
	return false
}

// T looks up one display string, falling back to English, then to the key
// itself so a missing entry is visible rather than blank.
func T(lang, key string) string {
	if msgs, ok := messagesByLang[lang]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}
	if v, ok := messagesByLang["en"][key]; ok {
		return v
	}
	return key
}

// Strings returns the full table for a language with English filling any
// gaps.
func Strings(lang string) map[string]string {
	out := make(map[string]string, len(messagesByLang["en"]))
	for k, v := range messagesByLang["en"] {
		out[k] = v
	}
	if msgs, ok := messagesByLang[lang]; ok {
		for k, v := range msgs {
			out[k] = v
		}
	}
	return out
}
