//go:build rbdebug

package Trees

const debugChecks = true
