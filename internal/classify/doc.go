// Package classify turns raw daemon and wallet-backend log lines into
// rendering instructions.
//
// # Pipeline
//
// Every daemon line passes through four steps:
//
//	raw line
//	   │
//	   ├─> blank check        whitespace-only lines are Suppressed
//	   ├─> DetectLinks()      license / chat link predicates
//	   ├─> Scrub()            bracketed tags and the chat URL removed
//	   └─> Resolve()          suppression veto, links, color ladder
//
// Wallet-backend lines skip all of it and come out Plain with their text
// untouched.
//
// # Color ladder
//
// Colors are an ordered rule table. Every rule is evaluated and the last
// match wins, so a line with both "ERROR" and "===" is Violet:
//
//	Default < Success < Primary < Danger < Violet
//
// Lines containing ascii-art glyphs (█ ═ _ |) are Suppressed no matter what
// else they contain, links and errors included.
//
// # Statelessness
//
// Classification only looks at the line it is given. Callers reclassify the
// whole snapshot on every change notification; no results are cached.
package classify
