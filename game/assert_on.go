//go:build hexdebug

package game

// Built with -tags hexdebug every apply and undo re-verifies the board.
const assertInvariants = true
