// Package drafty converts lightweight inline markup into a normalized [Document]
// and renders Documents back through a pluggable [Formatter].
//
// # Markup
//
// The markup is line-oriented, formatting never spans lines:
//
//	*bold*  _italic_  ~strikethrough~  `code`
//
// Links (http://, https://, ftp://, www., ftp.), @mentions and #hashtags are detected
// in the text after the markup is stripped.
//
// # Notes and Policies
//
//  1. Parsing never fails. A span which partially overlaps another one is invalid markup
//     and is discarded. [ParseWithWarnings] reports such spans.
//  2. Offsets and lengths in a Document are counted in runes.
//  3. Lines are joined with a single space covered by a BR range.
//  4. Entities are deduplicated by the raw matched text within a single Parse call.
//     Two different-looking tokens are never merged.
//  5. Entity matches of different kinds are not arbitrated and may overlap.
//  6. Entity mutators only append ranges and entities, they never reorder or remove them.
//  7. Rendering never fails either: ranges with unknown entities are rendered with the HD tag.
package drafty
