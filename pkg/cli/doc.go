// Package cli provides the httpfixture command-line interface.
//
// Generator commands draw values from a single generator:
//   - headers: header name/value pairs
//   - mime: MIME types, optionally from one category
//   - paths: URL paths
//   - status: HTTP status codes, optionally from one class or with exclusions
//
// Plan commands work on fixture plan files (YAML or JSON):
//   - run: generate every fixture of a plan
//   - validate: check a plan without generating anything
//
// Every command honours --output text|json|yaml. In json and yaml modes only
// the encoded data is written to stdout; logs and errors go to stderr.
//
// Usage:
//
//	httpfixture status --class client-error -n 20
//	httpfixture status --exclude 404,500 --seed 42 -o json
//	httpfixture mime --category image
//	httpfixture paths --min-depth 2 --max-depth 4 --exclude '/admin/**'
//	httpfixture headers --where 'value != ""'
//	httpfixture run -f fixtures.yaml -o yaml
//	httpfixture validate -f fixtures.yaml
package cli
