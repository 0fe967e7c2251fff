// Package kinds provides the built-in property kinds: text, integer, float,
// boolean, enumeration, and the composite list, set, and map kinds that
// nest any other kind.
//
// Scalar kinds are configured with chained methods that return a copy:
//
//	title := types.Define("title", kinds.Text().Trimmed().Truncated(80))
//	count := types.NewProperty("count", kinds.Integer().Between(0, 10), 0)
//	tags  := types.Define("tags", kinds.Set(kinds.Text()))
package kinds
