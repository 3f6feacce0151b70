// Package cache provides a bounded least-recently-used cache.
//
// The renderer keeps two of them: rasterized glyph coverage masks and
// shaped glyph runs. Both are keyed by comparable structs that include the
// font size, so a size switch never returns stale entries.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
