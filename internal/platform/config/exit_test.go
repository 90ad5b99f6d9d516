package config

import (
	"bytes"
	"os"
	"testing"
)

func TestExitfWritesMessageAndExitsWithOne(t *testing.T) {
	var out bytes.Buffer
	code := -1
	exitOutput = &out
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitOutput = os.Stderr
		exitFunc = os.Exit
	})

	Exitf("missing %s", "CAPBRIDGE_APP_SOCK")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := out.String(); got != "missing CAPBRIDGE_APP_SOCK\n" {
		t.Fatalf("output = %q", got)
	}
}
