// Package text canonicalises the text of table cells.
//
// PDF text runs arrive with irregular spacing: initials split into separate
// glyph runs ("А . Б ."), subgroup markers with stray spaces ("1п / г"), and
// room numbers detached from their letter suffix ("3 а"). [Normalize] rewrites
// these into one canonical spelling so the lesson parser can match them:
//
//	text.Normalize("Иванов И . И .  3 а") // "Иванов И.И. 3а"
//
// [Canonical] composes decomposed Cyrillic letters (Unicode NFC) and is
// applied by the PDF reader to every run it emits.
package text
