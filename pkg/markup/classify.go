package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/zenith/pkg/color"
	"github.com/arthur-debert/zenith/pkg/errors"
)

// wordKind discriminates the classification of one tag word
type wordKind int

const (
	wordColor wordKind = iota
	wordHyperlink
	wordStyle
	wordMacro
	wordName // candidate CSS color or alias, resolved against the context
)

// word is the tagged result of classifying one tag word
type word struct {
	kind       wordKind
	background bool        // '@' prefix on a color word
	color      color.Color // wordColor
	style      Category    // wordStyle
	uri        string      // wordHyperlink
	macroName  string      // wordMacro
	macroArgs  []string    // wordMacro
	name       string      // wordName, includes any '@' prefix
}

var (
	reHex     = regexp.MustCompile(`^#[0-9a-fA-F]{3}$|^#[0-9a-fA-F]{6}$`)
	reIndexed = regexp.MustCompile(`^\d{1,3}$`)
	reTriplet = regexp.MustCompile(`^\d{1,3};\d{1,3};\d{1,3}$`)
	reMacro   = regexp.MustCompile(`^!([a-zA-Z][\w-]*)(\((.*)\))?$`)
)

// classifyWord classifies a single non-close tag word. Classification is
// purely syntactic except for the final fallthrough, where the word is
// left as a name for the resolver to match against CSS colors and the
// alias registry. Precedence: hex color, indexed color, RGB triplet,
// hyperlink, style keyword, macro, name.
func classifyWord(raw string) (word, error) {
	body, background := strings.CutPrefix(raw, "@")

	switch {
	case reHex.MatchString(body):
		c, err := color.FromHex(body)
		if err != nil {
			return word{}, err
		}
		return word{kind: wordColor, background: background, color: c}, nil

	case reIndexed.MatchString(body):
		index, err := strconv.Atoi(body)
		if err != nil {
			return word{}, errors.Wrapf(err, errors.ErrColorRange, "malformed indexed color %q", raw)
		}
		c, err := color.FromIndex(index)
		if err != nil {
			return word{}, err
		}
		return word{kind: wordColor, background: background, color: c}, nil

	case reTriplet.MatchString(body):
		c, err := color.FromTriplet(body)
		if err != nil {
			return word{}, err
		}
		return word{kind: wordColor, background: background, color: c}, nil

	case strings.HasPrefix(body, "#"):
		return word{}, errors.Newf(errors.ErrParse, "malformed hex color %q", raw)

	case strings.HasPrefix(raw, "~"):
		return word{kind: wordHyperlink, uri: raw[1:]}, nil
	}

	if cat, ok := styleKeywords[raw]; ok {
		return word{kind: wordStyle, style: cat}, nil
	}

	if strings.HasPrefix(raw, "!") {
		match := reMacro.FindStringSubmatch(raw)
		if match == nil {
			return word{}, errors.Newf(errors.ErrParse, "malformed macro invocation %q", raw)
		}

		var args []string
		if match[2] != "" {
			args = strings.Split(match[3], ",")
			for i := range args {
				args[i] = strings.TrimSpace(args[i])
			}
		}
		return word{kind: wordMacro, macroName: match[1], macroArgs: args}, nil
	}

	// CSS color names get the background treatment too, so the name
	// keeps its '@' prefix for alias lookups but records it for colors.
	if c, ok := color.FromName(body); ok {
		return word{kind: wordColor, background: background, color: c}, nil
	}

	return word{kind: wordName, background: background, name: raw}, nil
}
