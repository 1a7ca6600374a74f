package markup

import (
	"github.com/arthur-debert/zenith/pkg/color"
)

// Category is an independent axis of terminal styling. Setting one
// category never affects another.
type Category int

const (
	CategoryForeground Category = iota
	CategoryBackground
	CategoryBold
	CategoryDim
	CategoryItalic
	CategoryUnderline
	CategoryBlink
	CategoryReverse
	CategoryConceal
	CategoryStrike
	CategoryOverline
	CategoryHyperlink

	categoryCount
)

// String returns the name the category is closed by in markup
func (c Category) String() string {
	switch c {
	case CategoryForeground:
		return "fg"
	case CategoryBackground:
		return "bg"
	case CategoryBold:
		return "bold"
	case CategoryDim:
		return "dim"
	case CategoryItalic:
		return "italic"
	case CategoryUnderline:
		return "underline"
	case CategoryBlink:
		return "blink"
	case CategoryReverse:
		return "reverse"
	case CategoryConceal:
		return "conceal"
	case CategoryStrike:
		return "strike"
	case CategoryOverline:
		return "overline"
	case CategoryHyperlink:
		return "hyperlink"
	default:
		return "unknown"
	}
}

// styleKeywords maps tag words to the boolean category they toggle
var styleKeywords = map[string]Category{
	"bold":      CategoryBold,
	"dim":       CategoryDim,
	"italic":    CategoryItalic,
	"underline": CategoryUnderline,
	"blink":     CategoryBlink,
	"reverse":   CategoryReverse,
	"invert":    CategoryReverse,
	"conceal":   CategoryConceal,
	"strike":    CategoryStrike,
	"overline":  CategoryOverline,
}

// closeNames maps close-tag arguments to categories. It covers the style
// keywords plus the color and hyperlink categories.
var closeNames = func() map[string]Category {
	names := map[string]Category{
		"fg": CategoryForeground,
		"bg": CategoryBackground,
		"~":  CategoryHyperlink,
	}
	for keyword, cat := range styleKeywords {
		names[keyword] = cat
	}
	return names
}()

// sgrCodes holds the SGR parameter for each boolean category
var sgrCodes = map[Category]string{
	CategoryBold:      "1",
	CategoryDim:       "2",
	CategoryItalic:    "3",
	CategoryUnderline: "4",
	CategoryBlink:     "5",
	CategoryReverse:   "7",
	CategoryConceal:   "8",
	CategoryStrike:    "9",
	CategoryOverline:  "53",
}

// styleValue is the state of one category: unset, or set to a boolean,
// color, or hyperlink target depending on the category.
type styleValue struct {
	set   bool
	color color.Color // CategoryForeground / CategoryBackground
	text  string      // CategoryHyperlink
}

// Style is the effective value of every category, folded from the open
// scope frames. The zero value is the unstyled state.
type Style [categoryCount]styleValue

// IsPlain reports whether no category is set
func (s *Style) IsPlain() bool {
	for _, v := range s {
		if v.set {
			return false
		}
	}
	return true
}

// Delta is the set of category changes one tag's words produce
type Delta map[Category]styleValue
