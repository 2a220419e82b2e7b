// Package fixturetest provides helpers for asserting properties of
// generators from ordinary Go tests.
//
// # Usage
//
//	func TestCodes(t *testing.T) {
//	    r := fixturetest.Seeded(t)
//	    codes := httpgen.AllCodes(httpgen.WithRand(r))
//
//	    fixturetest.ForAll(t, codes, 1000, func(t testing.TB, code int) {
//	        if code < 100 || code > 511 {
//	            t.Errorf("code %d out of range", code)
//	        }
//	    })
//	}
//
// Seeded logs the seed when the test fails. Set HTTPFIXTURE_SEED to replay a
// failing run.
package fixturetest
