// Package game holds the Hanabi vocabulary read from transcripts: cards,
// hand positions and the actions players take, each with its own validation.
package game

// HandSize is the number of cards a player holds in a two-player game.
const HandSize = 5
