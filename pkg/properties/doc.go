// Package properties models the typed property values attached to pages.
//
// Every variant ([Date], [URL], [PhoneNumber], [Title], ...) is an immutable
// value implementing [Property]: Change* methods return a modified copy.
// [FromMap] dispatches on the "type" field and fails with
// [constants.ErrUnknownType] for types it does not model.
package properties
