// Package models provides the value objects shared by blocks, properties and
// pages: [RichText] spans with their [Annotations] and [Mention]s, and [Date]
// values.
//
// All values are immutable. Methods that change a value return a modified
// copy and leave the receiver untouched, so values can be shared freely
// between goroutines.
//
// Values are hydrated from decoded JSON objects with the *FromMap functions
// and projected back with ToMap. Hydration fails fast with an error wrapping
// [constants.ErrMalformedInput] or [constants.ErrUnknownType].
package models
