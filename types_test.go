package papers

import (
	"encoding/json"
	"testing"
)

func TestPaper_MarshalJSON(t *testing.T) {
	paper := &Paper{
		Title:    "T",
		Slug:     "t",
		Filename: "t.md",
		Extra:    map[string]any{"doi": "10.1/x", "title": "shadowed"},
	}

	data, err := json.Marshal(paper)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got["title"] != "T" {
		t.Fatalf("known fields must win over extra collisions: %#v", got)
	}
	if got["doi"] != "10.1/x" {
		t.Fatalf("extra fields must flatten to the top level: %#v", got)
	}
	if got["tags"] != nil {
		t.Fatalf("absent tags must encode as null, got %#v", got["tags"])
	}
	if got["status"] != nil {
		t.Fatalf("absent status must encode as null, got %#v", got["status"])
	}
	if got["authors"] == nil {
		t.Fatalf("authors must encode as an empty array, not null")
	}
}

func TestPaper_Summarize(t *testing.T) {
	paper := &Paper{
		Title:   "T",
		Slug:    "t",
		Summary: "s",
		Status:  "working",
		Content: "full body",
		HTML:    "<p>full body</p>",
	}

	summary := paper.Summarize()

	if summary.Status == nil || *summary.Status != "working" {
		t.Fatalf("status not carried: %#v", summary.Status)
	}

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := got["content"]; ok {
		t.Fatalf("summary view must drop the body: %#v", got)
	}
	if _, ok := got["html"]; ok {
		t.Fatalf("summary view must drop rendered HTML: %#v", got)
	}
}
