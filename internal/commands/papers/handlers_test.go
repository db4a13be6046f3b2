package paperscmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	papers "github.com/openpages/go-papers"
)

func newTestModule(tb testing.TB) *papers.Module {
	tb.Helper()
	module, err := papers.New(papers.DefaultConfig())
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	return module
}

func TestProcessDocumentHandler_Execute(t *testing.T) {
	module := newTestModule(t)
	handler := NewProcessDocumentHandler(module, nil)

	err := handler.Execute(context.Background(), ProcessDocumentCommand{
		Filename: "paper.md",
		Content:  "---\ntitle: Paper\n---\n## Summary\nHello",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	paper, err := module.Store().GetBySlug("paper")
	if err != nil {
		t.Fatalf("paper not stored: %v", err)
	}
	if paper.Title != "Paper" {
		t.Fatalf("title mismatch: %q", paper.Title)
	}
}

func TestProcessDocumentHandler_ValidationRejected(t *testing.T) {
	module := newTestModule(t)
	handler := NewProcessDocumentHandler(module, nil)

	err := handler.Execute(context.Background(), ProcessDocumentCommand{Content: "body"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if module.Store().Len() != 0 {
		t.Fatalf("invalid command must not reach the pipeline")
	}
}

func TestProcessDocumentHandler_PipelineErrorPropagates(t *testing.T) {
	module := newTestModule(t)
	handler := NewProcessDocumentHandler(module, nil)

	err := handler.Execute(context.Background(), ProcessDocumentCommand{
		Filename: "broken.md",
		Content:  "---\ntitle: [oops\n---\nbody",
	})
	if !errors.Is(err, papers.ErrMetadataInvalid) {
		t.Fatalf("expected wrapped metadata error, got %v", err)
	}
}

func TestProcessArchiveHandler_Execute(t *testing.T) {
	module := newTestModule(t)
	handler := NewProcessArchiveHandler(module, nil)

	archive := tarMember("one.md", "## Summary\nfirst")
	archive = append(archive, tarMember("two.md", "## Summary\nsecond")...)

	if err := handler.Execute(context.Background(), ProcessArchiveCommand{Archive: archive}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if module.Store().Len() != 2 {
		t.Fatalf("expected both members processed, got %d", module.Store().Len())
	}
}

func TestProcessArchiveHandler_PartialFailurePropagates(t *testing.T) {
	module := newTestModule(t)
	handler := NewProcessArchiveHandler(module, nil)

	archive := tarMember("bad.md", "---\ntitle: [oops\n---\nbody")
	archive = append(archive, tarMember("good.md", "## Summary\nfine")...)

	err := handler.Execute(context.Background(), ProcessArchiveCommand{Archive: archive})
	if !errors.Is(err, papers.ErrMetadataInvalid) {
		t.Fatalf("expected wrapped metadata error, got %v", err)
	}
	if module.Store().Len() != 1 {
		t.Fatalf("clean members must still process, got %d", module.Store().Len())
	}
}

func tarMember(name, content string) []byte {
	header := make([]byte, 512)
	copy(header, name)
	copy(header[124:], fmt.Sprintf("%011o", len(content)))

	padded := make([]byte, (len(content)+511)/512*512)
	copy(padded, content)

	return append(header, padded...)
}
