// Package pages models page objects: their parent, icon and named property
// values, with the full, update and create payloads the API expects.
package pages
