package level

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseASCII(t *testing.T) {
	l := ParseASCII("test", "Test", []string{
		"#D",
		"MO",
	})

	if l.Rows != 2 || l.Cols != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", l.Rows, l.Cols)
	}

	want := []int{CodeStandard, CodeDurable, CodeMimic, CodePortal}
	for i, w := range want {
		if got := l.CodeAt(i); got != w {
			t.Errorf("CodeAt(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestParseASCIIRaggedLines(t *testing.T) {
	l := ParseASCII("ragged", "Ragged", []string{
		"###",
		"#",
	})

	if l.Cols != 3 {
		t.Fatalf("Cols = %d, want 3", l.Cols)
	}
	// Short lines are padded with empty cells
	if l.Code(1, 1) != CodeEmpty || l.Code(1, 2) != CodeEmpty {
		t.Error("short line should pad with empty cells")
	}
}

func TestCodeAtOutOfRangeFallsBackToFirst(t *testing.T) {
	l := &Level{ID: "x", Rows: 1, Cols: 2, Layout: []int{CodeTurret, CodeEmpty}}

	if got := l.CodeAt(-1); got != CodeTurret {
		t.Errorf("CodeAt(-1) = %d, want first entry %d", got, CodeTurret)
	}
	if got := l.CodeAt(99); got != CodeTurret {
		t.Errorf("CodeAt(99) = %d, want first entry %d", got, CodeTurret)
	}
}

func TestCodeAtInvalidCodeIsEmpty(t *testing.T) {
	l := &Level{ID: "x", Rows: 1, Cols: 1, Layout: []int{42}}
	if got := l.CodeAt(0); got != CodeEmpty {
		t.Errorf("CodeAt(0) = %d, want empty for invalid code", got)
	}
}

func TestGetOutOfRangeFallsBackToLevelZero(t *testing.T) {
	first := Get(0)
	fallback := Get(9999)
	if fallback.ID != first.ID {
		t.Errorf("Get(9999).ID = %q, want %q", fallback.ID, first.ID)
	}
}

func TestGetWrapped(t *testing.T) {
	n := Count()
	if n == 0 {
		t.Fatal("no builtin levels")
	}
	if GetWrapped(n).ID != Get(0).ID {
		t.Error("GetWrapped(Count()) should wrap to level 0")
	}
}

func TestBuiltinLevelsValid(t *testing.T) {
	for i, l := range BuiltinLevels() {
		if !l.Valid() {
			t.Errorf("builtin level %d (%s) is invalid", i, l.ID)
		}
		if l.CountBricks() == 0 {
			t.Errorf("builtin level %d (%s) has no bricks", i, l.ID)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := Get(0)
	c := l.Clone()
	c.Layout[0] = CodeTurret
	if l.Layout[0] == CodeTurret && l.Layout[0] != Get(0).Layout[0] {
		t.Error("Clone should not share layout storage")
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: custom
name: Custom
rows: 2
cols: 3
layout: [1, 0, 2, 7, 6, 0]
`)
	l, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if l.ID != "custom" || l.Rows != 2 || l.Cols != 3 {
		t.Errorf("parsed level = %+v", l)
	}
	if l.Code(1, 0) != CodeTurret {
		t.Errorf("Code(1,0) = %d, want turret", l.Code(1, 0))
	}
}

func TestParseYAMLRejectsBadDimensions(t *testing.T) {
	data := []byte(`
id: bad
rows: 2
cols: 2
layout: [1, 1, 1]
`)
	if _, err := Parse(data); err == nil {
		t.Error("Parse should reject layout length mismatch")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()

	good := []byte("id: aaa\nname: A\nrows: 1\ncols: 2\nlayout: [1, 1]\n")
	bad := []byte("id: bbb\nrows: 9\ncols: 9\nlayout: [1]\n")
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), good, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}

	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("LoadAll() returned %d levels, want 1 (invalid file skipped)", len(levels))
	}
	if levels[0].ID != "aaa" {
		t.Errorf("loaded level ID = %q, want aaa", levels[0].ID)
	}
}
