package fsutil

import "testing"

func TestMockFSBasic(t *testing.T) {
	fs := NewMockFS(map[string]string{
		"/proj/package.json": `{"name":"proj"}`,
		"/proj/src/a.js":     "// a",
	}, nil)

	if stat, err := fs.Stat("/proj/src/a.js"); err != nil || !stat.IsFile {
		t.Fatalf("expected /proj/src/a.js to be a file, got %+v err=%v", stat, err)
	}
	if stat, err := fs.Stat("/proj/src"); err != nil || !stat.IsDirectory {
		t.Fatalf("expected /proj/src to be a directory, got %+v err=%v", stat, err)
	}
	if _, err := fs.Stat("/proj/src/missing.js"); !IsNotExist(err) && err == nil {
		t.Fatalf("expected missing file to error")
	}

	contents, err := fs.ReadFile("/proj/package.json")
	if err != nil || contents != `{"name":"proj"}` {
		t.Fatalf("unexpected read: %q err=%v", contents, err)
	}
}

func TestMockFSRealpath(t *testing.T) {
	fs := NewMockFS(map[string]string{
		"/proj/node_modules/linked/package.json": `{"name":"linked","source":"./src/index.js"}`,
	}, map[string]string{
		"/proj/node_modules/linked/package.json": "/home/dev/linked/package.json",
	})

	real, err := fs.Realpath("/proj/node_modules/linked/package.json")
	if err != nil || real != "/home/dev/linked/package.json" {
		t.Fatalf("expected symlink target, got %q err=%v", real, err)
	}

	real, err = fs.Realpath("/proj/node_modules/linked/src/index.js")
	if err != nil || real != "/proj/node_modules/linked/src/index.js" {
		t.Fatalf("expected identity realpath for non-symlinked file, got %q err=%v", real, err)
	}
}

func TestMockFSStatCalls(t *testing.T) {
	fs := NewMockFS(map[string]string{"/a": "x"}, nil)
	if fs.StatCalls() != 0 {
		t.Fatalf("expected 0 stat calls before any probe")
	}
	fs.Stat("/a")
	fs.Stat("/b")
	if fs.StatCalls() != 2 {
		t.Fatalf("expected 2 stat calls, got %d", fs.StatCalls())
	}
}
