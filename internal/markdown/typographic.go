package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

type typographicRule struct {
	match string
	repl  rune
}

// typographicRules is checked longest-match-first so "---" is not
// shadowed by "--".
var typographicRules = []typographicRule{
	{"---", '—'},
	{"--", '–'},
	{"...", '…'},
	{"(c)", '©'},
	{"(C)", '©'},
	{"(r)", '®'},
	{"(R)", '®'},
	{"(p)", '§'},
	{"(P)", '§'},
	{"(tm)", '™'},
	{"(TM)", '™'},
	{"+-", '±'},
	{"<<", '«'},
	{">>", '»'},
}

// CheckTypographic recognizes a run of ASCII punctuation that this
// editor replaces with its typographic equivalent for display, e.g.
// "--" becomes an en dash. Matching is literal and case-sensitive
// except where a rule explicitly lists both cases.
func CheckTypographic(buf *gapbuffer.Buffer, pos int) (r rune, totalLen int, ok bool) {
	n := buf.Len()
	for _, rule := range typographicRules {
		l := len(rule.match)
		if pos+l > n {
			continue
		}
		if matchLiteral(buf, pos, rule.match) {
			return rule.repl, l, true
		}
	}
	return 0, 0, false
}

// emojiShortcodes is a small static table of the shortcodes this
// editor resolves inline; it is intentionally not exhaustive.
var emojiShortcodes = map[string]rune{
	"smile":        '😄',
	"grin":         '😁',
	"laughing":     '😆',
	"wink":         '😉',
	"heart":        '❤',
	"thumbsup":     '👍',
	"thumbsdown":   '👎',
	"tada":         '🎉',
	"rocket":       '🚀',
	"fire":         '🔥',
	"eyes":         '👀',
	"thinking":     '🤔',
	"warning":      '⚠',
	"check":        '✅',
	"x":            '❌',
	"bulb":         '💡',
	"bug":          '🐛',
	"sparkles":     '✨',
	"100":          '💯',
	"clap":         '👏',
}

// CheckEmojiShortcode recognizes ":name:" where name is 1-64 bytes,
// starts with an alphanumeric character or '+'/'-', and otherwise
// consists of alphanumeric, '_', or '+'/'-', resolving it against a
// static table. An unknown name is not a match — callers render the
// literal text unchanged.
func CheckEmojiShortcode(buf *gapbuffer.Buffer, pos int) (r rune, totalLen int, ok bool) {
	n := buf.Len()
	if pos >= n || buf.At(pos) != ':' {
		return 0, 0, false
	}
	end := lineEnd(buf, pos)

	nameStart := pos + 1
	if nameStart >= end {
		return 0, 0, false
	}
	first := buf.At(nameStart)
	if !isAlnum(first) && first != '+' && first != '-' {
		return 0, 0, false
	}

	i := nameStart
	for i < end && i < nameStart+64 {
		b := buf.At(i)
		if isAlnum(b) || b == '_' || b == '+' || b == '-' {
			i++
			continue
		}
		break
	}
	if i >= end || buf.At(i) != ':' || i == nameStart {
		return 0, 0, false
	}

	name := Span{Start: nameStart, End: i}.Text(buf)
	if r, found := emojiShortcodes[name]; found {
		return r, i + 1 - pos, true
	}
	return 0, 0, false
}
