// Package inlinedhash implements a generic associative-container core with
// a fixed inline slot capacity and an overflow slice for growth beyond it,
// exposed through two thin facades, Map and Set.
//
// The underlying engine (Table) supports two interchangeable probe
// strategies selected at construction time: a sentinel strategy using
// reserved empty/deleted key values (linear/quadratic probing), and a
// hopscotch strategy using per-bucket leaf bitmaps. Both share the same
// externally visible semantics: Find, Insert, Erase, Clear, and forward
// iteration.
package inlinedhash
