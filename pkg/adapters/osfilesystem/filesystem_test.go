package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "scene.yaml")
	testData := []byte("width: 2\n")

	if err := fs.WriteFile(testPath, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_CreateWritesBinary(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "out", "stream.y4m")

	f, err := fs.Create(testPath)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	payload := []byte{0x00, 0xFF, '\n', 0x80}
	if _, err := f.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("expected %v, got %v", payload, data)
	}
}

func TestFileSystem_CreateTruncates(t *testing.T) {
	fs := New()
	testPath := filepath.Join(t.TempDir(), "stream.y4m")
	os.WriteFile(testPath, []byte("previous contents"), 0644)

	f, err := fs.Create(testPath)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	f.Write([]byte("new"))
	f.Close()

	data, _ := os.ReadFile(testPath)
	if string(data) != "new" {
		t.Errorf("expected file to be truncated, got %q", data)
	}
}

func TestFileSystem_CreateFailsOnDirectory(t *testing.T) {
	fs := New()

	if _, err := fs.Create(t.TempDir()); err == nil {
		t.Error("expected error when creating over a directory")
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()

	testPath := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := fs.MkdirAll(testPath); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	exists, err = fs.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}
