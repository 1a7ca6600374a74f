// Package registry provides a generic, type-safe registry for
// managing named items such as markup aliases and macros. Each
// registry tracks a generation counter that is bumped on every
// mutation, which render caches use for invalidation.
package registry
