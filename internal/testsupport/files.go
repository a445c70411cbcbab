package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSkin writes content to <tempdir>/<name>/skin.ini and returns the path.
func WriteSkin(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name, "skin.ini")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ManiaSkin is a small skin with two key layouts used across command tests.
const ManiaSkin = `[General]
Name: Test Skin
Author: tester

[Mania]
Keys: 4
ColumnStart: 136
ColumnWidth: 60,60,60,60
HitPosition: 402
Colour1: 20,20,20,255
KeyImage0: mania\key1

[Mania]
Keys: 7
ColumnStart: 100
`
