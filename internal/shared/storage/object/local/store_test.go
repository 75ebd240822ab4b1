package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"resumebuilder-backend/internal/shared/util"
)

// Minimal valid PNG header so content sniffing resolves to image/png.
var pngBytes = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestSaveOpenDeleteRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "user-1", "avatar.png", bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(pngBytes)) {
		t.Fatalf("expected size %d, got %d", len(pngBytes), size)
	}
	if mimeType != "image/png" {
		t.Fatalf("expected image/png, got %q", mimeType)
	}
	if !strings.HasPrefix(key, util.HashUserKey("user-1")+"/") {
		t.Fatalf("expected key under hashed user dir, got %q", key)
	}
	if !strings.HasSuffix(key, "_avatar.png") {
		t.Fatalf("expected key to keep sanitized name, got %q", key)
	}

	rc, _, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("read object: %v", err)
	}
	if !bytes.Equal(got, pngBytes) {
		t.Fatalf("stored bytes differ from input")
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := store.Open(ctx, key); err == nil {
		t.Fatalf("expected Open to fail after delete")
	}
}

func TestSaveRandomizesKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key1, _, _, err := store.Save(ctx, "user-1", "avatar.png", bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Save first: %v", err)
	}
	key2, _, _, err := store.Save(ctx, "user-1", "avatar.png", bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Save second: %v", err)
	}
	if key1 == key2 {
		t.Fatalf("expected distinct keys for repeated saves, got %q twice", key1)
	}
}

func TestSaveRejectsTraversalName(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "user-1", "../escape.png", bytes.NewReader(pngBytes)); err == nil {
		t.Fatalf("expected error for traversal file name")
	}
}

func TestDeleteMissingObjectIsQuiet(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Delete(context.Background(), "no/such/object.png"); err != nil {
		t.Fatalf("expected missing object delete to succeed, got %v", err)
	}
}

func TestOpenRejectsTraversalKey(t *testing.T) {
	store := New(t.TempDir())

	if _, _, err := store.Open(context.Background(), "../outside.txt"); err == nil {
		t.Fatalf("expected error for traversal key")
	}
}
