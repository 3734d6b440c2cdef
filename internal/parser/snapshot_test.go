package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramStringSnapshots pins the parser's rendered AST for four of the
// §8 scenarios, the same "large structured text, changes rarely, worth diffing"
// use go-snaps serves for the teacher's captured interpreter output.
func TestProgramStringSnapshots(t *testing.T) {
	sources := map[string]string{
		"newline_print": `print '\n';`,
		"factorial_loop": `var x int = 1;
var fact int = 1;
while x < 11 {
  fact = fact * x;
  x = x + 1;
  print fact;
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
print isprime(15);
print isprime(37);`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			program := testParse(t, src)
			snaps.MatchSnapshot(t, program.String())
		})
	}
}
