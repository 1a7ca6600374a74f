// Package markup implements ZML, a BBCode-like markup language rendered
// into terminal escape sequences.
//
// Markup text is literal except for backslash-escaped brackets and tags:
//
//	"Welcome to [bold #4A7A9F]Zenith[/fg]!"
//
// A tag carries whitespace-separated words. Each word sets a color
// (hex, 0-255 index, r;g;b triplet, or CSS name, with a '@' prefix for
// backgrounds), toggles a style attribute (bold, italic, ...), opens a
// hyperlink (~uri), invokes a macro (!name), or references an alias.
// Words starting with '/' close the matching category; a bare [/] closes
// the innermost open tag.
//
// Style categories are independent: each open tag records the prior value
// of every category it touches, and closing restores those values rather
// than clearing them, so sibling and nested tags compose predictably.
//
// Aliases and macros live in a Context. Contexts are independent, so tests
// and embedding libraries get isolated registries; a process-wide default
// context backs the package-level convenience functions.
package markup
