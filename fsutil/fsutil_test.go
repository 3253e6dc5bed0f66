package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestCleanFilename(t *testing.T) {
	in := "aa bb%cc:dd/ee,ff.gg\\hh[ii]jj"
	got := CleanFilename(in)
	want := "aabbccddeeffgghhiijj"
	if got != want {
		t.Errorf("CleanFilename(%q) = %q, want %q", in, got, want)
	}

	// Idempotent: cleaning twice changes nothing.
	if again := CleanFilename(got); again != got {
		t.Errorf("second pass changed result: %q -> %q", got, again)
	}

	for _, r := range got {
		for _, bad := range DefaultStripSet {
			if r == bad {
				t.Errorf("output contains stripped character %q", r)
			}
		}
	}
}

func TestCleanFilenameStrip(t *testing.T) {
	if got := CleanFilenameStrip("a.b.c", ""); got != "a.b.c" {
		t.Errorf("empty strip set changed input: %q", got)
	}
	if got := CleanFilenameStrip("hello world", "lo "); got != "hewrd" {
		t.Errorf("got %q, want %q", got, "hewrd")
	}
}

func TestExists(t *testing.T) {
	if !Exists("fsutil.go") {
		t.Error("expected fsutil.go to exist")
	}
	if Exists("no_such_file_xyz.go") {
		t.Error("expected nonexistent file to not exist")
	}
}

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"sub", "sub/deeper"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"a.py", "b.txt", "ryfiles.py", "sub/c.py", "sub/deeper/d.py", "sub/e.txt"} {
		if err := os.WriteFile(filepath.Join(root, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestListFilesGlobNonRecursive(t *testing.T) {
	root := makeTree(t)

	got, err := ListFiles(root, "a.*", ListOptions{})
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	want := []string{filepath.Join(root, "a.py")}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestListFilesGlobRecursive(t *testing.T) {
	root := makeTree(t)

	got, err := ListFiles(root, "*.py", ListOptions{Recurse: true})
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 matches, got %v", got)
	}

	// Parents come before descendants.
	if got[len(got)-1] != filepath.Join(root, "sub", "deeper", "d.py") {
		t.Errorf("expected deepest file last, got %v", got)
	}
}

func TestListFilesIncludeDirs(t *testing.T) {
	root := makeTree(t)

	got, err := ListFiles(root, "sub*", ListOptions{Recurse: true, IncludeDirs: true})
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(got) != 1 || got[0] != filepath.Join(root, "sub") {
		t.Errorf("got %v, want [%s]", got, filepath.Join(root, "sub"))
	}
}

func TestListFilesMultiPattern(t *testing.T) {
	root := makeTree(t)

	// First match wins; a name matching both patterns appears once.
	got, err := ListFiles(root, "*.py;a.*", ListOptions{})
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected a.py and ryfiles.py once each, got %v", got)
	}
}

func TestListFilesRegexIsSubstringSearch(t *testing.T) {
	root := makeTree(t)

	got, err := ListFiles(root, "py", ListOptions{Mode: MatchRegex})
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	// "py" must match ryfiles.py and a.py by substring search.
	if len(got) != 2 {
		t.Errorf("expected 2 substring matches, got %v", got)
	}
}

func TestListFilesRegexCompileError(t *testing.T) {
	root := makeTree(t)

	_, err := ListFiles(root, "[unclosed", ListOptions{Mode: MatchRegex})
	if err == nil {
		t.Error("expected compile error for malformed regex")
	}
}

func TestListFilesMissingRoot(t *testing.T) {
	got, err := ListFiles(filepath.Join(t.TempDir(), "nope"), "*", ListOptions{Recurse: true})
	if err != nil {
		t.Fatalf("missing root must not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestListFilesFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.dat":     {Data: []byte("x")},
		"sub/b.dat": {Data: []byte("x")},
		"sub/c.txt": {Data: []byte("x")},
	}

	got, err := ListFilesFS(fsys, "*.dat", ListOptions{Recurse: true})
	if err != nil {
		t.Fatalf("ListFilesFS failed: %v", err)
	}
	if len(got) != 2 || got[0] != "a.dat" || got[1] != "sub/b.dat" {
		t.Errorf("got %v, want [a.dat sub/b.dat]", got)
	}
}
