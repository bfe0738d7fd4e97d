//go:build goldpiecedebug

package goldpiece

const debugAsserts = true
