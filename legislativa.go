// Package legislativa tracks legislation published as PDF documents.
// It scrapes source pages for PDF links, extracts document text, detects
// changes against the last stored snapshot, and answers questions over the
// collected text through a language-model completion API.
//
// This package contains domain types and interfaces. Implementations live
// in subdirectories named after their primary dependency (e.g., goquery/,
// pdf/, gemini/, openrouter/) or their role (scrape/, ask/).
package legislativa
