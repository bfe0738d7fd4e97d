//go:build !goldpiecedebug

package goldpiece

const debugAsserts = false
