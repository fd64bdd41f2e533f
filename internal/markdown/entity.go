package markdown

import "github.com/andrewmd5/dawn-sub002/internal/gapbuffer"

// namedEntities covers the common HTML named character references this
// editor renders inline; it is not the full HTML5 table, only the set
// that shows up in everyday prose.
var namedEntities = map[string]rune{
	"amp":     '&',
	"lt":      '<',
	"gt":      '>',
	"quot":    '"',
	"apos":    '\'',
	"nbsp":    ' ',
	"copy":    '©',
	"reg":     '®',
	"trade":   '™',
	"mdash":   '—',
	"ndash":   '–',
	"hellip":  '…',
	"lsquo":   '‘',
	"rsquo":   '’',
	"ldquo":   '“',
	"rdquo":   '”',
	"deg":     '°',
	"plusmn":  '±',
	"times":   '×',
	"divide":  '÷',
	"euro":    '€',
	"pound":   '£',
	"yen":     '¥',
	"cent":    '¢',
	"sect":    '§',
	"para":    '¶',
	"middot":  '·',
	"larr":    '←',
	"uarr":    '↑',
	"rarr":    '→',
	"darr":    '↓',
	"bull":    '•',
	"dagger":  '†',
	"Dagger":  '‡',
	"permil":  '‰',
	"infin":   '∞',
	"ne":      '≠',
	"le":      '≤',
	"ge":      '≥',
}

// CheckHTMLEntity recognizes "&name;" (named) or "&#NNN;" /
// "&#xHHH;" (numeric, decimal or hex) entity references, returning the
// decoded rune and the total byte length consumed.
func CheckHTMLEntity(buf *gapbuffer.Buffer, pos int) (r rune, totalLen int, ok bool) {
	n := buf.Len()
	if pos >= n || buf.At(pos) != '&' {
		return 0, 0, false
	}
	end := lineEnd(buf, pos)

	semi := -1
	for i := pos + 1; i < end && i < pos+32; i++ {
		if buf.At(i) == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return 0, 0, false
	}

	body := Span{Start: pos + 1, End: semi}
	if body.Len() == 0 {
		return 0, 0, false
	}

	if buf.At(body.Start) == '#' {
		numStart := body.Start + 1
		if numStart >= body.End {
			return 0, 0, false
		}
		hex := false
		if buf.At(numStart) == 'x' || buf.At(numStart) == 'X' {
			hex = true
			numStart++
		}
		if numStart >= body.End {
			return 0, 0, false
		}
		val := 0
		for i := numStart; i < body.End; i++ {
			b := buf.At(i)
			var d int
			switch {
			case isDigit(b):
				d = int(b - '0')
			case hex && b >= 'a' && b <= 'f':
				d = int(b-'a') + 10
			case hex && b >= 'A' && b <= 'F':
				d = int(b-'A') + 10
			default:
				return 0, 0, false
			}
			base := 10
			if hex {
				base = 16
			}
			val = val*base + d
			if val > 0x10FFFF {
				return 0, 0, false
			}
		}
		return rune(val), semi + 1 - pos, true
	}

	name := body.Text(buf)
	if r, found := namedEntities[name]; found {
		return r, semi + 1 - pos, true
	}
	return 0, 0, false
}
