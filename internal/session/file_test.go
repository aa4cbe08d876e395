package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if got != "abc123" {
		t.Errorf("Token() = %q, want %q", got, "abc123")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "absent"))

	got, err := store.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if got != "" {
		t.Errorf("Token() = %q, want empty", got)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if got != "abc123" {
		t.Errorf("Token() = %q, want %q", got, "abc123")
	}
}

func TestFileStoreClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path)

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, err := store.Token()
	if err != nil {
		t.Fatalf("Token after Clear: %v", err)
	}
	if got != "" {
		t.Errorf("Token() after Clear = %q, want empty", got)
	}

	// Clearing an already empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty store: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Token()
	if err != nil || got != "tok" {
		t.Fatalf("Token() = %q, %v; want %q, nil", got, err, "tok")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err = store.Token()
	if err != nil || got != "" {
		t.Fatalf("Token() after Clear = %q, %v; want empty, nil", got, err)
	}
}
