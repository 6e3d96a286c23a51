// Package render serializes compiled virtual node trees to HTML.
//
// The renderer preserves the compiled attribute order exactly, merges
// style declarations into one style attribute in source order without
// deduplication, and escapes all text and attribute content. Interactive
// nodes (those with listener bindings) are assigned hydration IDs and
// their bindings collected into a registry the preview server uses to
// route incoming events.
package render
