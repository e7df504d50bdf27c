package classify

import "strings"

// ColorTag names the highlight applied to a colored line.
type ColorTag int

const (
	Default ColorTag = iota
	Success
	Primary
	Danger
	Violet
)

func (c ColorTag) String() string {
	switch c {
	case Success:
		return "success"
	case Primary:
		return "primary"
	case Danger:
		return "danger"
	case Violet:
		return "violet"
	default:
		return "default"
	}
}

// Kind is the rendering category of a line.
type Kind int

const (
	Suppressed Kind = iota
	Plain
	Colored
	Link
	CompoundLink
)

func (k Kind) String() string {
	switch k {
	case Suppressed:
		return "suppressed"
	case Plain:
		return "plain"
	case Colored:
		return "colored"
	case Link:
		return "link"
	case CompoundLink:
		return "compound-link"
	default:
		return "unknown"
	}
}

// Category is the resolved rendering instruction. Color is only meaningful
// for Colored; URL and Label for the link kinds; Prefix for CompoundLink.
type Category struct {
	Kind   Kind
	Color  ColorTag
	URL    string
	Label  string
	Prefix string
}

// suppressGlyphs mark ascii-art banners that break a fixed-width view.
var suppressGlyphs = []string{"█", "═", "_", "|"}

type colorRule struct {
	tag      ColorTag
	patterns []string
}

// colorRules are evaluated in order; the last matching rule wins.
var colorRules = []colorRule{
	{tag: Success, patterns: []string{"TurtleCoin", "[checkpoints]", "added to main chain"}},
	{tag: Primary, patterns: []string{"Stop signal sent"}},
	{tag: Danger, patterns: []string{"ERROR"}},
	{tag: Violet, patterns: []string{"==="}},
}

// Resolve assigns a category to a daemon line. Predicates look at raw; the
// scrubbed text only feeds link labels.
func Resolve(raw, scrubbed string) Category {
	if containsAny(raw, suppressGlyphs) {
		return Category{Kind: Suppressed}
	}

	links := DetectLinks(raw)
	switch {
	case links.License:
		return Category{Kind: Link, URL: scrubbed, Label: scrubbed}
	case links.Chat:
		return Category{
			Kind:   CompoundLink,
			Prefix: strings.ReplaceAll(scrubbed, ChatURL, ""),
			URL:    ChatURL,
			Label:  ChatURL,
		}
	}

	return Category{Kind: Colored, Color: resolveColor(raw)}
}

func resolveColor(raw string) ColorTag {
	tag := Default
	for _, rule := range colorRules {
		if containsAny(raw, rule.patterns) {
			tag = rule.tag
		}
	}
	return tag
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
