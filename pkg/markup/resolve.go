package markup

import (
	"strings"

	"github.com/arthur-debert/zenith/pkg/errors"
)

// expandWord classifies one word, following alias references. The visited
// set tracks the names on the current expansion path; revisiting one is a
// cycle and fatal, never a hang.
func expandWord(ctx *Context, raw string, visited map[string]bool) ([]word, error) {
	w, err := classifyWord(raw)
	if err != nil {
		return nil, err
	}

	if w.kind != wordName {
		return []word{w}, nil
	}

	expansion, ok := ctx.LookupAlias(w.name)
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownReference, "unknown tag %q", raw)
	}

	if visited[w.name] {
		return nil, errors.Newf(errors.ErrCyclicAlias,
			"alias %q expands through itself", w.name)
	}

	visited[w.name] = true
	defer delete(visited, w.name)

	var out []word
	for _, part := range strings.Fields(expansion) {
		words, err := expandWord(ctx, part, visited)
		if err != nil {
			return nil, err
		}
		out = append(out, words...)
	}

	return out, nil
}

// aliasCategories returns the style categories an alias would set, so a
// close tag naming the alias can restore exactly those.
func aliasCategories(ctx *Context, name string) ([]Category, error) {
	words, err := expandWord(ctx, name, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	seen := make(map[Category]bool)
	var cats []Category

	record := func(cat Category) {
		if !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}

	for _, w := range words {
		switch w.kind {
		case wordColor:
			if w.background {
				record(CategoryBackground)
			} else {
				record(CategoryForeground)
			}
		case wordStyle:
			record(w.style)
		case wordHyperlink:
			record(CategoryHyperlink)
		}
	}

	return cats, nil
}
