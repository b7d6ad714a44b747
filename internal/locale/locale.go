// Package locale renders the fixed set of user-facing registration messages.
// Handlers pick a language from the request; the registration engine only
// ever passes message keys.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys used by the registration engine.
const (
	KeyActivityDisabled     = "activity_disabled"
	KeyMandatoryPlanMissing = "mandatory_plan_missing"
	KeyCannotAddDisabled    = "cannot_add_disabled"
	KeyCannotRemoveDisabled = "cannot_remove_disabled"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	b.SetString(language.English, KeyActivityDisabled,
		"One or more chosen activities are no longer offered")
	b.SetString(language.English, KeyMandatoryPlanMissing,
		"Please choose at least one option from %s")
	b.SetString(language.English, KeyCannotAddDisabled,
		"%s is no longer offered and cannot be added")
	b.SetString(language.English, KeyCannotRemoveDisabled,
		"%s is no longer offered and cannot be removed; contact the registrar")

	b.SetString(language.Japanese, KeyActivityDisabled,
		"選択されたイベントは現在受付終了しています")
	b.SetString(language.Japanese, KeyMandatoryPlanMissing,
		"%sから少なくとも1つ選択してください")
	b.SetString(language.Japanese, KeyCannotAddDisabled,
		"%sは受付終了のため追加できません")
	b.SetString(language.Japanese, KeyCannotRemoveDisabled,
		"%sは受付終了のため削除できません。事務局までご連絡ください")

	return b
}

// Printer formats messages for one language.
type Printer struct {
	p *message.Printer
}

// NewPrinter matches the given language preferences against the supported
// languages, falling back to English. Each preference may be a single BCP 47
// tag or a full Accept-Language value such as "ja,en;q=0.9".
func NewPrinter(prefs ...string) *Printer {
	var tags []language.Tag
	for _, pref := range prefs {
		if parsed, _, err := language.ParseAcceptLanguage(pref); err == nil {
			tags = append(tags, parsed...)
		}
	}
	tag, _, _ := matcher.Match(tags...)
	return &Printer{p: message.NewPrinter(tag, message.Catalog(messages))}
}

// T renders the message for key with the given arguments.
func (pr *Printer) T(key string, args ...interface{}) string {
	return pr.p.Sprintf(key, args...)
}
