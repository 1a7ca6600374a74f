package markup

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/arthur-debert/zenith/pkg/color"
)

// CachedRenderer memoizes successful renders. Keys include the context
// generation, so any alias or macro registration invalidates prior
// entries without coordination.
type CachedRenderer struct {
	renderer *Renderer
	cache    *gocache.Cache
}

// NewCachedRenderer wraps a renderer with an expiring render cache
func NewCachedRenderer(ctx *Context, level color.Level) *CachedRenderer {
	return &CachedRenderer{
		renderer: NewRenderer(ctx, level),
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Render renders markup, serving repeated inputs from the cache. Only
// successful, diagnostic-free renders are cached; anything else falls
// through to a full render every time.
func (c *CachedRenderer) Render(input string) (string, error) {
	key := fmt.Sprintf("%d|%d|%s", c.renderer.ctx.Generation(), c.renderer.level, input)

	if cached, found := c.cache.Get(key); found {
		return cached.(string), nil
	}

	out, diags, err := c.renderer.RenderDiagnostics(input)
	if err != nil {
		return "", err
	}

	if len(diags) == 0 {
		c.cache.Set(key, out, gocache.DefaultExpiration)
	}

	return out, nil
}
