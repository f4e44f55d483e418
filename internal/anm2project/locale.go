package anm2project

import "github.com/oov/anm2edit/internal/anm2doc"

// localeSep mirrors gettext's own convention for packing a msgctxt and a
// msgid into one lookup key (glib uses the same 0x04 byte as GETTEXT_CONTEXT_GLUE).
const localeSep = "\x04"

// catalogs holds the translated strings this project ships for the handful
// of fallback/placeholder strings anm2doc and anm2codec localize (selector
// names, the "(None)" unselected-item label, and so on). Locales not listed
// here, including "", fall back to the literal English text untranslated.
var catalogs = map[string]map[string]string{
	"ja": {
		".ptk.anm2" + localeSep + "Unnamed Selector":                             "名前なしセレクタ",
		".ptk.anm2 default name for unnamed selector" + localeSep + "Selector":    "セレクタ",
		".ptk.anm2 multi-script section name" + localeSep + "Selector":           "セレクタ",
		".ptk.anm2 multi-script section name" + localeSep + "OverwriteSelector":  "上書きセレクタ",
		".ptk.anm2 Unselected item name for selector" + localeSep + "(None)":     "(なし)",
		".ptk.anm2" + localeSep + "Exclusive Support":                            "排他表示",
		".ptk.anm2 OverwriteSelector" + localeSep + "Character ID":               "キャラクターID",
		".ptk.anm2" + localeSep + "PSD Layer Selector for %s":                    "%s 用レイヤーセレクタ",
		".ptk.anm2 OverwriteSelector" + localeSep + "PSD Layer Selector for %s":   "%s 用レイヤーセレクタ",
	},
}

// NewLocalizer builds an anm2doc.Localizer for the given locale tag (a
// Config.Locale value). An empty or unrecognised locale returns nil, which
// anm2doc.Document treats as "use the literal English text".
func NewLocalizer(locale string) anm2doc.Localizer {
	catalog, ok := catalogs[locale]
	if !ok {
		return nil
	}
	return func(msgctxt, msgid string) string {
		if s, ok := catalog[msgctxt+localeSep+msgid]; ok {
			return s
		}
		return msgid
	}
}
