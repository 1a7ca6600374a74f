package markup

import (
	"github.com/arthur-debert/zenith/pkg/registry"
)

// TextTransform is a macro body: it rewrites the plain text a macro-bearing
// tag encloses. Transforms must be pure with respect to the pipeline; the
// result is treated as literal text and is not re-parsed for tags.
type TextTransform interface {
	Transform(text string, args []string) (string, error)
}

// TransformFunc adapts a plain function to the TextTransform interface
type TransformFunc func(text string, args []string) (string, error)

// Transform implements TextTransform
func (f TransformFunc) Transform(text string, args []string) (string, error) {
	return f(text, args)
}

// Context holds the alias and macro registries a render consults. Contexts
// are independent, so libraries and tests can keep isolated registries
// instead of sharing a process-wide singleton. Registration is safe across
// goroutines, but a render observes the registries as of its invocation;
// callers that mutate and render concurrently must serialize the two.
type Context struct {
	aliases registry.Registry[string]
	macros  registry.Registry[TextTransform]
}

// NewContext creates a context with the built-in macros registered and no
// aliases defined.
func NewContext() *Context {
	ctx := &Context{
		aliases: registry.New[string](),
		macros:  registry.New[TextTransform](),
	}
	registerBuiltinMacros(ctx)
	return ctx
}

// Alias registers a named shorthand for a sequence of tag words, e.g.
// Alias("title", "bold underline"). Re-registering a name overwrites the
// previous expansion.
func (c *Context) Alias(name, expansion string) {
	c.aliases.Set(name, expansion)
}

// Unalias removes an alias; removing an unknown name is a no-op
func (c *Context) Unalias(name string) {
	_ = c.aliases.Remove(name)
}

// LookupAlias returns an alias expansion
func (c *Context) LookupAlias(name string) (string, bool) {
	expansion, err := c.aliases.Get(name)
	return expansion, err == nil
}

// Aliases returns all registered alias names, sorted
func (c *Context) Aliases() []string {
	return c.aliases.List()
}

// Define registers a macro invocable from markup as [!name]. The name is
// given without the '!' prefix. Re-defining a name overwrites the
// previous transform.
func (c *Context) Define(name string, transform TextTransform) {
	c.macros.Set(name, transform)
}

// DefineFunc registers a plain function as a macro
func (c *Context) DefineFunc(name string, fn func(text string, args []string) (string, error)) {
	c.Define(name, TransformFunc(fn))
}

// LookupMacro returns a registered macro transform
func (c *Context) LookupMacro(name string) (TextTransform, bool) {
	transform, err := c.macros.Get(name)
	return transform, err == nil
}

// Generation returns a counter that changes whenever an alias or macro is
// registered or removed; render caches key on it.
func (c *Context) Generation() uint64 {
	return c.aliases.Generation() + c.macros.Generation()
}

// defaultContext backs the package-level convenience functions
var defaultContext = NewContext()

// Default returns the process-wide default context
func Default() *Context {
	return defaultContext
}

// Alias registers an alias in the default context
func Alias(name, expansion string) {
	defaultContext.Alias(name, expansion)
}

// Define registers a macro in the default context
func Define(name string, transform TextTransform) {
	defaultContext.Define(name, transform)
}
