package ir

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestModuleDumpSnapshots pins the textual dump of lowered modules the way
// the teacher pins interpreter output: the dump is the artifact an external
// code generator would read, so a stray formatting change anywhere in
// string.go should show up as a diff here.
func TestModuleDumpSnapshots(t *testing.T) {
	sources := map[string]string{
		"factorial_loop": `var x int = 1;
var fact int = 1;
while x < 11 {
  fact = fact * x;
  x = x + 1;
}`,
		"if_else_branch": `var a int = 2;
var b int = 3;
if a < b { print 'L'; } else { print 'G'; }`,
		"isprime_function": `func isprime(n int) bool {
  var f int = 2;
  while f <= n / 2 {
    if f * (n / f) == n {
      return false;
    }
    f = f + 1;
  }
  return true;
}
isprime(15);
isprime(37);`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			mod := mustLower(t, src)
			snaps.MatchSnapshot(t, mod.String())
		})
	}
}
