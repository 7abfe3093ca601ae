// Package stylesheet computes the CSS of a document and the shared
// definitions (filters, gradients, text paths) its elements reference.
//
// A Sheet is built once per print: Consolidate walks the tree and assigns a
// class to every distinct property block, in document order, and registers
// the definitions each styled node needs. Definitions are keyed by node id
// and kind, so each one is written exactly once into <defs> no matter how
// many times it is requested.
package stylesheet
