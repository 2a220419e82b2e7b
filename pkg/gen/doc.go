// Package gen provides composable random value generators for building
// test fixtures.
//
// A Generator produces one value per call to Next. Generators are built once
// and drawn any number of times; they hold no resources that need releasing.
//
// # Primitives
//
//   - Ints, Chars: uniform values in an inclusive range
//   - Letters, LowerLetters: ASCII letters
//   - Strings, LetterStrings, LowerStrings: strings with a generated length
//   - Const: always the same value
//
// # Combinators
//
//   - FixedValues: uniform sample from a caller-supplied collection
//   - Frequency: weighted choice between generators
//   - EnsureValues: mandatory values are each produced at least once within
//     a bounded number of draws; a fallback fills every other draw
//   - ExcludeValues, SuchThat: resample until a value is acceptable, up to a
//     bounded number of attempts
//   - Map: transform each draw
//
// Seq and Take expose a generator as a lazy sequence or a fixed-size slice.
//
// # Randomness
//
// Every generator that needs randomness takes a *rand.Rand from math/rand/v2.
// Passing the same RNG, built with NewRand, to every generator in a tree makes
// the whole tree reproducible from one seed. A nil RNG uses the global source.
//
// # Concurrency
//
// Generators are not safe for concurrent use. Combinators keep private state
// between draws (EnsureValues tracks which mandatory values are still
// outstanding) and *rand.Rand itself is unsynchronized. Use one generator tree
// per goroutine.
package gen
