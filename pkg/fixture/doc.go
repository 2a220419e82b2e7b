// Package fixture loads and runs fixture plans: declarative lists of HTTP
// fixtures to generate.
//
// A plan names each fixture, picks a kind (status, mime, path or header),
// a count, kind-specific settings and an optional expr-lang filter:
//
//	version: "1"
//	seed: 42
//	fixtures:
//	  - name: errors
//	    kind: status
//	    count: 50
//	    status: {class: client-error, exclude: [404]}
//	    where: "value != 418"
//	  - name: routes
//	    kind: path
//	    count: 10
//	    path: {minDepth: 1, maxDepth: 3, exclude: ["/admin/**"]}
//
// Plans are checked against an embedded JSON schema and then semantically
// (unique names, parsable classes and categories, compilable filters) before
// anything is generated. With a seed, every run of the same plan produces
// the same values.
package fixture
