package buildinfo

import (
	"strings"
	"testing"
)

func TestStamps(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.3", "abc1234"

	if got := Short(); got != "v1.2.3 (abc1234)" {
		t.Errorf("Short() = %q", got)
	}
	if got := String(); !strings.HasPrefix(got, "version: v1.2.3\ncommit: abc1234\n") {
		t.Errorf("String() = %q", got)
	}
	if got := Template(); !strings.Contains(got, "{{.Name}} v1.2.3") {
		t.Errorf("Template() = %q", got)
	}
}
