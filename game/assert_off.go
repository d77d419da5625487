//go:build !hexdebug

package game

const assertInvariants = false
