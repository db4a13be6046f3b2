package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
	yaml "gopkg.in/yaml.v2"

	"github.com/openpages/go-papers/pkg/interfaces"
)

// metadataDelimiter opens and closes the metadata block. The block is only
// recognized when the opening delimiter is the very first line of the
// document; blank-prefixed or alternative-delimiter blocks are body text.
var metadataDelimiter = []byte("---")

// yamlOnlyFormat restricts detection to ---/--- YAML blocks. The library
// defaults also accept TOML and JSON fences, which this pipeline must treat
// as ordinary content.
var yamlOnlyFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// SplitMetadata separates the leading `---`-delimited metadata block from the
// document body. It returns the decoded metadata, the body without
// delimiters, and whether a block was present at all.
//
// A missing block is not an error: the full input is returned as body with
// empty metadata so the caller can decide how loudly to complain. A detected
// block that fails to decode is a hard error; no partial recovery is
// attempted.
func SplitMetadata(source []byte) (interfaces.Metadata, []byte, bool, error) {
	if !bytes.HasPrefix(source, metadataDelimiter) {
		return interfaces.Metadata{}, source, false, nil
	}

	var meta interfaces.Metadata

	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta, yamlOnlyFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return interfaces.Metadata{}, source, false, nil
		}
		return interfaces.Metadata{}, nil, true, fmt.Errorf("parse metadata block: %w", err)
	}

	meta.Extra = normalizeExtra(meta.Extra)
	return meta, body, true, nil
}

// normalizeExtra rewrites decoded passthrough values into JSON-encodable
// shapes. yaml.v2 produces map[interface{}]interface{} for nested mappings,
// which encoding/json refuses to marshal.
func normalizeExtra(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}
