package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FamilyGEDCOM is a small three-person family used across package tests.
const FamilyGEDCOM = `0 HEAD
1 SOUR familygarden-tests
1 CHAR UTF-8
0 @I1@ INDI
1 NAME Jean /Dupont/
1 SEX M
1 BIRT
2 DATE 12 MAR 1900
2 PLAC Paris
1 OCCU
2 TYPE Boulanger
0 @I2@ INDI
1 NAME Marie /Martin/ (née Durand)
1 SEX F
1 BIRT
2 DATE ABT 1902
2 PLAC Lyon
1 DEAT
2 DATE 3 JAN 1980
0 @I3@ INDI
1 NAME Paul /Dupont/
1 SEX M
1 BIRT
2 DATE 1925
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE 5 JUN 1924
2 PLAC Paris
0 TRLR
`

// WriteGEDCOM writes content to name inside dir, normalizing leading
// indentation so tests can use raw string literals.
func WriteGEDCOM(t testing.TB, dir, name, content string) string {
	t.Helper()

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := min(int64(chunkSize), remaining)
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}
