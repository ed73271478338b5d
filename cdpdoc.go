// Package cdpdoc answers natural-language how-to questions against
// documentation harvested from several Customer Data Platforms (CDPs).
// It crawls each CDP's documentation site, stores canonical page records,
// chunks them into overlapping passages, builds deterministic per-CDP
// vector indexes, gates queries for topical scope, and assembles
// extractive answers with source URLs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/) or
// their concern (e.g., chunker/, index/, synth/).
package cdpdoc
