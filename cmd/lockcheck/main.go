// The lockcheck command reports lock acquisitions that the declared
// lock-order relation does not admit.
//
// Usage:
//
//	lockcheck ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/ezraisw/lockorder/lockcheck"
)

func main() {
	singlechecker.Main(lockcheck.Analyzer)
}
