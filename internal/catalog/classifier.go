package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Classifier decides whether a candidate title line is noise: seller
// chatter, separators, account offers, promo lines. Matching happens
// against a folded form of the line, so accented variants of a banned
// word are still caught.
type Classifier struct {
	patterns []*regexp.Regexp
}

func NewClassifier() *Classifier {
	patterns := make([]*regexp.Regexp, 0, len(skipPatterns))
	for _, p := range skipPatterns {
		patterns = append(patterns, regexp.MustCompile(p))
	}
	return &Classifier{patterns: patterns}
}

// Skip reports whether line must not enter the normalization pipeline.
func (c *Classifier) Skip(line string) bool {
	folded := FoldLine(line)
	for _, p := range c.patterns {
		if p.MatchString(folded) {
			return true
		}
	}
	return false
}

// FoldLine decomposes the line to NFD, drops combining marks and
// lowercases the result. The denylist patterns are written against this
// folded form.
func FoldLine(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Patterns run against folded (lowercased, mark-stripped) lines. The
// Persian entries cover greeting lines and bundle offers that carry no
// game title.
var skipPatterns = []string{
	`^[\d\W]+$`,
	`(?i)\b(?:demo|trial|beta|early access|account|dlc|season pass)\b`,
	`(?i).{0,5}(http|www|\.com|\.ir|id:|number of post)`,
	`^\s*$`,
	`^(سلام|ممنون|مجموعه|پلاس|همراه|اکانت)`,
	`[=*]{4,}`,
	`^(?:📥|💰|🔥|❗️|♻️|✅|🟢|🎲|🔻)`,
	`(?i)\(some games on ea play\)`,
	`\d+\.\d+\.\d{4}`,
	`(?i)ps[45]:\s*\d+\s*t\s*\(btc,usdt\)`,
	`(?i)\d+\)\s*(ps gameshare|log seller's|castore|playstation kingdom|ps-station market)`,
	`(?i)\d+xtreme ps4 & ps5`,
	`(?i)7 days to die`,
	`(?i)log seller`,
	`(?i)acc 33521`,
	`(?i)some games on ea play`,
	`(?i)r1 🇺🇸 usa`,
	`(?i)ps plus`,
	`(?i)\+\s*plus`,
	`(?i)🤞🏻\s*online\s*\+\s*offline`,
	`(?i)\*?بازی\s*درخواستی`,
	`(?i)middle-earth\s*shadow`,
	`(?i)100 hits`,
	`(?i)100x`,
	`(?i)200 hits`,
	`(?i)50 hits`,
	`(?i)200x`,
	`(?i)300x`,
	`(?i)500x`,
	`(?i)4\)`,
	`(?i)acc021`,
	`(?i)ps gameshare`,
	`(?i)castore`,
	`(?i)playstation kingdom`,
	`(?i)ps-station market`,
	`آفر`,
	`بی نظیر`,
	`افر`,
	`ویژه`,
}
