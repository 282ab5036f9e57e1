package domain

import (
	"sort"
	"strings"
)

// googleLanguages maps language names to the codes accepted by Google Translate.
var googleLanguages = map[string]string{
	"afrikaans":             "af",
	"albanian":              "sq",
	"amharic":               "am",
	"arabic":                "ar",
	"armenian":              "hy",
	"assamese":              "as",
	"aymara":                "ay",
	"azerbaijani":           "az",
	"bambara":               "bm",
	"basque":                "eu",
	"belarusian":            "be",
	"bengali":               "bn",
	"bhojpuri":              "bho",
	"bosnian":               "bs",
	"bulgarian":             "bg",
	"catalan":               "ca",
	"cebuano":               "ceb",
	"chichewa":              "ny",
	"chinese (simplified)":  "zh-CN",
	"chinese (traditional)": "zh-TW",
	"corsican":              "co",
	"croatian":              "hr",
	"czech":                 "cs",
	"danish":                "da",
	"dhivehi":               "dv",
	"dogri":                 "doi",
	"dutch":                 "nl",
	"english":               "en",
	"esperanto":             "eo",
	"estonian":              "et",
	"ewe":                   "ee",
	"filipino":              "tl",
	"finnish":               "fi",
	"french":                "fr",
	"frisian":               "fy",
	"galician":              "gl",
	"georgian":              "ka",
	"german":                "de",
	"greek":                 "el",
	"guarani":               "gn",
	"gujarati":              "gu",
	"haitian creole":        "ht",
	"hausa":                 "ha",
	"hawaiian":              "haw",
	"hebrew":                "iw",
	"hindi":                 "hi",
	"hmong":                 "hmn",
	"hungarian":             "hu",
	"icelandic":             "is",
	"igbo":                  "ig",
	"ilocano":               "ilo",
	"indonesian":            "id",
	"irish":                 "ga",
	"italian":               "it",
	"japanese":              "ja",
	"javanese":              "jw",
	"kannada":               "kn",
	"kazakh":                "kk",
	"khmer":                 "km",
	"kinyarwanda":           "rw",
	"konkani":               "gom",
	"korean":                "ko",
	"krio":                  "kri",
	"kurdish (kurmanji)":    "ku",
	"kurdish (sorani)":      "ckb",
	"kyrgyz":                "ky",
	"lao":                   "lo",
	"latin":                 "la",
	"latvian":               "lv",
	"lingala":               "ln",
	"lithuanian":            "lt",
	"luganda":               "lg",
	"luxembourgish":         "lb",
	"macedonian":            "mk",
	"maithili":              "mai",
	"malagasy":              "mg",
	"malay":                 "ms",
	"malayalam":             "ml",
	"maltese":               "mt",
	"maori":                 "mi",
	"marathi":               "mr",
	"meiteilon (manipuri)":  "mni-Mtei",
	"mizo":                  "lus",
	"mongolian":             "mn",
	"myanmar":               "my",
	"nepali":                "ne",
	"norwegian":             "no",
	"odia (oriya)":          "or",
	"oromo":                 "om",
	"pashto":                "ps",
	"persian":               "fa",
	"polish":                "pl",
	"portuguese":            "pt",
	"punjabi":               "pa",
	"quechua":               "qu",
	"romanian":              "ro",
	"russian":               "ru",
	"samoan":                "sm",
	"sanskrit":              "sa",
	"scots gaelic":          "gd",
	"sepedi":                "nso",
	"serbian":               "sr",
	"sesotho":               "st",
	"shona":                 "sn",
	"sindhi":                "sd",
	"sinhala":               "si",
	"slovak":                "sk",
	"slovenian":             "sl",
	"somali":                "so",
	"spanish":               "es",
	"sundanese":             "su",
	"swahili":               "sw",
	"swedish":               "sv",
	"tajik":                 "tg",
	"tamil":                 "ta",
	"tatar":                 "tt",
	"telugu":                "te",
	"thai":                  "th",
	"tigrinya":              "ti",
	"tsonga":                "ts",
	"turkish":               "tr",
	"turkmen":               "tk",
	"twi":                   "ak",
	"ukrainian":             "uk",
	"urdu":                  "ur",
	"uyghur":                "ug",
	"uzbek":                 "uz",
	"vietnamese":            "vi",
	"welsh":                 "cy",
	"xhosa":                 "xh",
	"yiddish":               "yi",
	"yoruba":                "yo",
	"zulu":                  "zu",
}

// codesByLower indexes canonical codes by their lower-cased form.
var codesByLower = func() map[string]string {
	m := make(map[string]string, len(googleLanguages))
	for _, code := range googleLanguages {
		m[strings.ToLower(code)] = code
	}
	return m
}()

// NormalizeLanguage resolves a language code or name to its canonical code.
// "fr", "FR" and "French" all resolve to "fr".
func NormalizeLanguage(lang string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(lang))
	if key == "" {
		return "", ErrMissingLanguage
	}
	if code, ok := codesByLower[key]; ok {
		return code, nil
	}
	if code, ok := googleLanguages[key]; ok {
		return code, nil
	}
	return "", &ValidationError{Field: "language", Message: "unsupported language: " + lang, Err: ErrUnsupportedLanguage}
}

// SupportedLanguages returns every supported language sorted by name.
func SupportedLanguages() []Language {
	out := make([]Language, 0, len(googleLanguages))
	for name, code := range googleLanguages {
		out = append(out, Language{Name: name, Code: code})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LanguageName returns the display name for a canonical code, or the code
// itself when unknown.
func LanguageName(code string) string {
	for name, c := range googleLanguages {
		if strings.EqualFold(c, code) {
			return name
		}
	}
	return code
}
