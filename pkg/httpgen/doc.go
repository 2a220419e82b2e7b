// Package httpgen generates HTTP protocol fixtures: header name/value pairs,
// MIME types, URL paths and status codes.
//
// Each generator mixes curated vocabulary with random values. The vocabulary
// tables (HeaderNames, MimeTypeValues, StatusCodeValues) are part of the
// package contract and never change between releases of the same major
// version, so tests may assert that specific values appear.
//
//	r := gen.NewRand(42)
//	headers := httpgen.NewHeaders(httpgen.WithRand(r))
//	h, err := headers.Next() // e.g. {Accept image/gif}
//
// Like the generators in package gen, values returned here are not safe for
// concurrent use.
package httpgen
