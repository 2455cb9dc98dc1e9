// meta/meta.go
package meta

// ContextGames is the number of complete games bundled with each partial game.
const ContextGames = 4

// Seed seeds the sampling source when none is configured.
const Seed = 42

// SamplesPerPair caps the samples drawn from one bot pairing.
const SamplesPerPair = 4500

// MinGameTokens is the shortest encoded game a prediction can be cut from.
const MinGameTokens = 10

// Workers is the default number of encoding goroutines.
const Workers = 8

// Bots lists the bot names whose pairings are sampled by default.
var Bots = []string{"PileBot", "SignalBot"}
