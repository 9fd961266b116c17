package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gamedex/gamedex/internal/region"
)

// ErrNotPost marks a block without an id line. Delimiter fragments and
// footer junk hit this constantly, so callers treat it as routine.
var ErrNotPost = errors.New("block has no post id")

// ErrAdvertisement marks a seller self-promotion block.
var ErrAdvertisement = errors.New("block is an advertisement")

var (
	idPattern        = regexp.MustCompile(`id:\s*(\d+)`)
	idLinePattern    = regexp.MustCompile(`id:\s*\d+\s*\n`)
	adPattern        = regexp.MustCompile(`(?i)Buy\s*\(خرید\)|جوین بشید و پیام بدید`)
	regionPattern    = regexp.MustCompile(`(?i)🌐\s*Region?\s*(\d+)`)
	escapedChar      = regexp.MustCompile(`\\[=\-]`)
	escapedNewline   = regexp.MustCompile(`\\n`)
	separatorRun     = regexp.MustCompile(`[=*]{4,}`)
	blockDelimiter   = regexp.MustCompile(`(?m)^\s*(?:={10,}|-{10,})\s*$`)
	metadataLine     = regexp.MustCompile(`(?i)🌐|💰|💸|♻️|💷|🔥|❗️|@|=\-|PS\d`)
	nonDigit         = regexp.MustCompile(`\D`)
	titleSectionStop = "=-=-=-=-=-=-=-=-="
)

// PriceInfo is the listed price for one platform. Price stays nil when
// the seller wrote a non-numeric value or marked the listing sold.
type PriceInfo struct {
	Price *int
	Sold  bool
}

// Record is a structured marketplace post.
type Record struct {
	ID      int64
	Content string
	Region  *string
	PS4     PriceInfo
	PS5     PriceInfo
}

// ParseBlock structures one raw post block. Returns ErrNotPost when the
// id line is missing and ErrAdvertisement for seller promo blocks; both
// mean the block must not be persisted.
func ParseBlock(block string) (*Record, error) {
	idMatch := idPattern.FindStringSubmatch(block)
	if idMatch == nil {
		return nil, ErrNotPost
	}
	id, err := strconv.ParseInt(idMatch[1], 10, 64)
	if err != nil {
		return nil, ErrNotPost
	}

	if adPattern.MatchString(block) {
		return nil, ErrAdvertisement
	}

	rec := &Record{
		ID:      id,
		Content: cleanContent(block),
		PS4:     ExtractPrice(block, "PS4"),
		PS5:     ExtractPrice(block, "PS5"),
	}

	if m := regionPattern.FindStringSubmatch(block); m != nil {
		if code := region.Normalize(m[1]); code != "" {
			rec.Region = &code
		}
	}
	return rec, nil
}

// TitleLines returns the candidate game title lines of the post: the
// section above the title/metadata separator, minus metadata lines and
// anything too short to be a real title.
func (r *Record) TitleLines() []string {
	section := r.Content
	if i := strings.Index(section, titleSectionStop); i >= 0 {
		section = section[:i]
	}

	var lines []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "id:") {
			continue
		}
		if metadataLine.MatchString(line) {
			continue
		}
		if utf8.RuneCountInString(line) <= 2 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// BuildPricePattern compiles the price matcher for one platform label.
// Sellers use four prefix styles; the platform-tagged ones come first
// so a mixed post resolves per platform before the generic fallbacks.
func BuildPricePattern(platform string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(platform)
	return regexp.MustCompile(
		`(?i)💰\s*Price\s*` + quoted + `\s*:\s*(\S+)` +
			`|💸\s*Price\s*` + quoted + `\s*:\s*(\S+)` +
			`|♻️\s*Price\s*:\s*(\S+)` +
			`|💷\s*Price\s*:\s*(\S+)`)
}

var (
	ps4Price = BuildPricePattern("PS4")
	ps5Price = BuildPricePattern("PS5")
)

// ExtractPrice pulls the price value for platform out of content. A
// value containing "sold" in any casing sets Sold and leaves Price nil.
func ExtractPrice(content, platform string) PriceInfo {
	pattern := ps4Price
	if strings.EqualFold(platform, "PS5") {
		pattern = ps5Price
	}

	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return PriceInfo{}
	}

	value := ""
	for _, g := range m[1:] {
		if g != "" {
			value = g
			break
		}
	}
	if value == "" {
		return PriceInfo{}
	}

	info := PriceInfo{Sold: strings.Contains(strings.ToLower(value), "sold")}
	if digits := nonDigit.ReplaceAllString(value, ""); digits != "" {
		if price, err := strconv.Atoi(digits); err == nil && price != 0 {
			info.Price = &price
		}
	}
	return info
}

// SplitBlocks cuts raw source text into post blocks. Delimiters are
// lines made of a long homogeneous run of = or -, which keeps the mixed
// =-=- section separator inside a post intact.
func SplitBlocks(text string) []string {
	var blocks []string
	for _, part := range blockDelimiter.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			blocks = append(blocks, part)
		}
	}
	return blocks
}

// The id line is dropped, escaped delimiter characters are unescaped
// and decorative separator runs removed.
func cleanContent(block string) string {
	content := idLinePattern.ReplaceAllString(block, "")
	content = escapedChar.ReplaceAllStringFunc(content, func(m string) string {
		if m == `\=` {
			return "="
		}
		return "-"
	})
	content = escapedNewline.ReplaceAllString(content, "\n")
	content = separatorRun.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}
