package archive

import (
	"fmt"
	"testing"
)

// buildMember assembles one 512-byte header plus padded content, mirroring
// the ustar layout the reader understands.
func buildMember(name string, content []byte) []byte {
	header := make([]byte, blockSize)
	copy(header, name)
	copy(header[sizeOffset:], fmt.Sprintf("%011o", len(content)))

	padded := make([]byte, paddedSize(len(content)))
	copy(padded, content)

	return append(header, padded...)
}

func TestExtract_RoundTrip(t *testing.T) {
	buf := buildMember("doc.md", []byte("0123456789"))

	entries := Extract(buf)

	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Name != "doc.md" {
		t.Fatalf("name mismatch: %q", entries[0].Name)
	}
	if entries[0].Content != "0123456789" {
		t.Fatalf("content mismatch: %q", entries[0].Content)
	}
}

func TestExtract_StopsAtZeroBlock(t *testing.T) {
	buf := buildMember("first.md", []byte("keep"))
	buf = append(buf, make([]byte, blockSize)...)
	buf = append(buf, buildMember("after.md", []byte("ignored"))...)

	entries := Extract(buf)

	if len(entries) != 1 || entries[0].Name != "first.md" {
		t.Fatalf("scan must stop at the terminator block: %#v", entries)
	}
}

func TestExtract_NonMarkdownAdvancesCursor(t *testing.T) {
	buf := buildMember("notes.txt", []byte("skipped body"))
	buf = append(buf, buildMember("doc.md", []byte("found"))...)

	entries := Extract(buf)

	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %#v", entries)
	}
	if entries[0].Name != "doc.md" || entries[0].Content != "found" {
		t.Fatalf("entry after skipped member decoded wrong: %#v", entries[0])
	}
}

func TestExtract_ZeroSizeEntrySkipped(t *testing.T) {
	buf := buildMember("empty.md", nil)
	buf = append(buf, buildMember("doc.md", []byte("real"))...)

	entries := Extract(buf)

	if len(entries) != 1 || entries[0].Name != "doc.md" {
		t.Fatalf("zero-size member must be skipped: %#v", entries)
	}
}

func TestExtract_BadOctalSizeTreatedAsZero(t *testing.T) {
	buf := buildMember("doc.md", []byte("abc"))
	copy(buf[sizeOffset:], "not-octal---")

	entries := Extract(buf)

	if len(entries) != 0 {
		t.Fatalf("unparsable size must degrade to zero, got %#v", entries)
	}
}

func TestExtract_TruncatedTrailingHeader(t *testing.T) {
	buf := buildMember("doc.md", []byte("ok"))
	buf = append(buf, make([]byte, 100)...)

	entries := Extract(buf)

	if len(entries) != 1 {
		t.Fatalf("short trailing header must end the scan cleanly: %#v", entries)
	}
}

func TestExtract_DeclaredSizeBeyondBuffer(t *testing.T) {
	header := make([]byte, blockSize)
	copy(header, "doc.md")
	copy(header[sizeOffset:], fmt.Sprintf("%011o", 4096))

	entries := Extract(header)

	if len(entries) != 0 {
		t.Fatalf("oversized declaration must skip extraction, got %#v", entries)
	}
}

func TestExtract_NameTrimmedAtNull(t *testing.T) {
	buf := buildMember("doc.md", []byte("x"))
	// Bytes after the terminator in the name field must not leak into the name.
	copy(buf[10:], "garbage")
	copy(buf[:7], "doc.md\x00")

	entries := Extract(buf)

	if len(entries) != 1 || entries[0].Name != "doc.md" {
		t.Fatalf("name not trimmed at first null: %#v", entries)
	}
}
