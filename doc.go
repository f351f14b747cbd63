/*
Package alphamap maps between an application-level character space and the
dense "trie alphabet" space used by array-based tries.

Array tries index their transition arrays with small contiguous integers,
while application alphabets are rarely contiguous (think of Unicode scalar
values, or a custom symbol set scattered over a few code blocks). An AlphaMap
records the registered character ranges and assigns each registered character
a compact code, so a trie can size its arrays by the number of registered
characters instead of by the full external range.

Compact code 0 is reserved as the string terminator and is never assigned;
code 1 goes to the first character of the first range, and codes grow
monotonically across ranges in registration order. Lookups of unregistered
characters return sentinels (TrieCharMax, AlphaCharError) rather than errors,
since mapping sits on trie hot paths.

An AlphaMap is built once, from AddRange calls, a textual range definition
(Load/Open), or a binary block (ReadBin), and is read-only afterwards. In
that state it is safe for concurrent readers; construction must not overlap
with reads.
*/
package alphamap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'alphamap'
func tracer() tracing.Trace {
	return tracing.Select("alphamap")
}
