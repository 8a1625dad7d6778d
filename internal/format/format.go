// Package format renders numbers as locale-aware display strings.
//
// A Cache holds one decimal format per fraction-digit count, created
// lazily and retained for the cache lifetime. Most callers use the
// package-level Format, which is bound to the process locale.
package format

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type decimalFormat struct {
	opts []number.Option
}

// Cache hands out locale-bound decimal formats keyed by fraction-digit
// count. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	printer *message.Printer
	formats map[int]*decimalFormat
}

func New(tag language.Tag) *Cache {
	return &Cache{
		printer: message.NewPrinter(tag),
		formats: make(map[int]*decimalFormat),
	}
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide cache bound to the locale named by the
// environment (LC_ALL, LC_NUMERIC, LANG), falling back to English.
func Default() *Cache {
	defaultOnce.Do(func() {
		defaultCache = New(DetectLocale())
	})
	return defaultCache
}

// Format renders v with exactly decimals fraction digits using the
// process-wide cache.
func Format(v float64, decimals int) string {
	return Default().Format(v, decimals)
}

// Format renders v with exactly decimals fraction digits and the locale's
// grouping separators.
func (c *Cache) Format(v float64, decimals int) string {
	f := c.formatFor(decimals)
	return c.printer.Sprintf("%v", number.Decimal(v, f.opts...))
}

func (c *Cache) formatFor(decimals int) *decimalFormat {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.formats[decimals]; ok {
		return f
	}
	f := &decimalFormat{opts: []number.Option{
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	}}
	c.formats[decimals] = f
	return f
}

// DetectLocale reads the locale from the environment, checking LC_ALL,
// LC_NUMERIC, then LANG. Unset, "C", and "POSIX" fall through to English.
func DetectLocale() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.English
}
