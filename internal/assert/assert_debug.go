//go:build hybriddebug

package assert

func init() {
	Enabled = true
}
