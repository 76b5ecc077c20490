//go:build !inlinedhash_invariants

package inlinedhash

const invariants = false
