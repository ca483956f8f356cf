//go:build tools
// +build tools

// Package tools tracks the code generators of this module, so that
// go generate works on a fresh checkout.
package crewcast

import (
	_ "go.uber.org/mock/mockgen"
)
