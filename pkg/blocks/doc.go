// Package blocks models the content blocks of a page.
//
// Every variant (paragraph, quote, numbered list item, breadcrumb, ...) is an
// immutable value implementing [Block]. Blocks are hydrated from decoded JSON
// objects with [FromMap], which dispatches on the "type" field, or with the
// variant's own *FromMap function, which fails with
// [constants.ErrTypeMismatch] when the type does not match.
//
// Two projections exist. ToMap returns the full representation, used to
// create blocks and to append children. ToUpdateMap returns the partial
// representation accepted by update requests: only the mutable content
// fields and the archived flag. It never contains children, the id or
// timestamps, so sending it cannot overwrite fields managed by the server.
//
//	item := blocks.NewNumberedListItemFromString("Buy milk")
//	item = item.AppendChild(blocks.NewParagraphFromString("2 liters"))
//	payload := item.ToMap()
//
// Children are exclusively owned by their parent: AddChild and
// ChangeChildren copy the child list, and HasChildren in the metadata always
// reflects it. Leaf variants such as [Breadcrumb] reject children with
// [constants.ErrUnsupportedOperation].
package blocks
