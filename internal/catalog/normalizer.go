package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Normalizer reduces a raw title line to its canonical clean form. The
// pipeline runs in a fixed order: denylist check, whitespace collapse,
// alias pass, rewrite cascade, edition sweep, dangling separator
// cleanup, then a second alias pass so that stripping can expose an
// alias that the raw line hid.
type Normalizer struct {
	classifier *Classifier
	aliases    []compiledAlias
	rewrites   []compiledRewrite
	editions   []*regexp.Regexp
}

type compiledAlias struct {
	re        *regexp.Regexp
	canonical string
}

type compiledRewrite struct {
	re          *regexp.Regexp
	replacement string
}

var (
	spaceRun        = regexp.MustCompile(`\s+`)
	danglingDashEnd = regexp.MustCompile(`\s*\\?-\s*$`)
	danglingDashMid = regexp.MustCompile(`\s*\\?-\s+`)
	ctrSuffix       = regexp.MustCompile(`\s*\+\s*CTR Nitro-Fueled`)
	oxideSuffix     = regexp.MustCompile(`\s*\+\s*Nitros Oxide`)
)

func NewNormalizer(classifier *Classifier, rules Ruleset) (*Normalizer, error) {
	n := &Normalizer{classifier: classifier}

	for _, a := range rules.Aliases {
		re, err := regexp.Compile("(?i)" + a.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile alias %q: %w", a.Pattern, err)
		}
		n.aliases = append(n.aliases, compiledAlias{re: re, canonical: a.Canonical})
	}
	for _, r := range rules.Rewrites {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile rewrite %q: %w", r.Pattern, err)
		}
		n.rewrites = append(n.rewrites, compiledRewrite{re: re, replacement: r.Replacement})
	}
	for _, e := range rules.Editions {
		re, err := regexp.Compile(`\s*[-–]?\s*` + e)
		if err != nil {
			return nil, fmt.Errorf("compile edition %q: %w", e, err)
		}
		n.editions = append(n.editions, re)
	}
	return n, nil
}

// Clean returns the canonical form of raw and true, or "" and false when
// the line is rejected by the classifier. Callers decide what to do with
// very short results; Clean itself does not enforce a length floor.
func (n *Normalizer) Clean(raw string) (string, bool) {
	if n.classifier.Skip(raw) {
		return "", false
	}

	t := strings.TrimSpace(spaceRun.ReplaceAllString(raw, " "))
	t = n.applyAliases(t)

	for _, r := range n.rewrites {
		t = r.re.ReplaceAllString(t, r.replacement)
	}
	for _, e := range n.editions {
		t = e.ReplaceAllString(t, "")
	}

	t = danglingDashMid.ReplaceAllString(t, " ")
	t = danglingDashEnd.ReplaceAllString(t, "")
	t = strings.TrimSpace(t)

	t = ctrSuffix.ReplaceAllString(t, "")
	t = oxideSuffix.ReplaceAllString(t, "")

	t = strings.TrimSpace(n.applyAliases(t))
	return t, true
}

// First matching alias replaces the whole title and ends the pass.
func (n *Normalizer) applyAliases(title string) string {
	for _, a := range n.aliases {
		if a.re.MatchString(title) {
			return a.canonical
		}
	}
	return title
}
