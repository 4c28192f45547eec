package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"sable/report"
)

// writeTestModule materializes a Sable module on disk for an end to end run
// of the compiler.  The sources map file names to file contents.
func writeTestModule(t *testing.T, prelude string, sources map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testmod")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create module directory: %s", err)
	}

	modFile := "name = \"testmod\"\nsable-version = \"0.1.0\"\n" + prelude
	if err := ioutil.WriteFile(filepath.Join(dir, "sable-mod.toml"), []byte(modFile), 0644); err != nil {
		t.Fatalf("failed to write module file: %s", err)
	}

	for name, src := range sources {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
			t.Fatalf("failed to write source file: %s", err)
		}
	}

	return dir
}

func TestCompileAcyclicModule(t *testing.T) {
	dir := writeTestModule(t, "", map[string]string{
		"consts.sb": `
const A: int = 1;
const B: int = A + 1;
`,
		"main.sb": `
fn main() -> int {
	A + B
}
`,
	})

	c := NewCompiler(dir, report.LogLevelSilent)
	if code := c.Execute(); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %v", code, errorMessages(c))
	}
}

func TestCompileRecursiveModule(t *testing.T) {
	dir := writeTestModule(t, "", map[string]string{
		"consts.sb": `const A: int = B;`,
		"more.sb":   `const B: int = A;`,
	})

	c := NewCompiler(dir, report.LogLevelSilent)
	if code := c.Execute(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	if c.rep.ErrorCount() != 2 {
		t.Errorf("expected 2 errors, got %d: %v", c.rep.ErrorCount(), errorMessages(c))
	}
}

func TestCompileWithPrelude(t *testing.T) {
	dir := writeTestModule(t, "prelude = [\"INT_MAX\"]\n", map[string]string{
		"consts.sb": `const A: int = INT_MAX;`,
	})

	c := NewCompiler(dir, report.LogLevelSilent)
	if code := c.Execute(); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %v", code, errorMessages(c))
	}
}

func TestCompileSyntaxError(t *testing.T) {
	dir := writeTestModule(t, "", map[string]string{
		"bad.sb": `const A: int = ;`,
	})

	c := NewCompiler(dir, report.LogLevelSilent)
	if code := c.Execute(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

// errorMessages extracts the recorded error messages of a compiler run.
func errorMessages(c *Compiler) []string {
	var messages []string
	for _, msg := range c.rep.Errors() {
		messages = append(messages, msg.Message)
	}

	return messages
}
