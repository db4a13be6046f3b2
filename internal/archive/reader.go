// Package archive decodes the ustar-style subset of the tar format needed to
// pull Markdown members out of an in-memory archive buffer. Producers are
// assumed cooperative, so malformed header fields degrade to "skip or stop"
// instead of failing the whole scan.
package archive

import (
	"strconv"
	"strings"
)

const (
	blockSize  = 512
	nameLen    = 100
	sizeOffset = 124
	sizeLen    = 12

	memberSuffix = ".md"
)

// Entry is one extracted archive member. Entries are produced transiently per
// scan; the reader retains nothing.
type Entry struct {
	Name    string `json:"filename"`
	Content string `json:"content"`
}

// Extract scans buf as a sequence of 512-byte-aligned headers and returns the
// non-empty members whose name ends in ".md", in archive order.
//
// The scan stops at the first all-zero header block or when fewer than 512
// bytes remain. Every entry advances the cursor by its padded content length,
// extracted or not, so non-matching members keep the cursor aligned.
func Extract(buf []byte) []Entry {
	var entries []Entry

	offset := 0
	for offset+blockSize <= len(buf) {
		header := buf[offset : offset+blockSize]
		if isZeroBlock(header) {
			break
		}

		name := decodeName(header[:nameLen])
		size := decodeSize(header[sizeOffset : sizeOffset+sizeLen])
		offset += blockSize

		if size > 0 && strings.HasSuffix(name, memberSuffix) {
			if end := offset + size; end <= len(buf) {
				entries = append(entries, Entry{
					Name:    name,
					Content: strings.ToValidUTF8(string(buf[offset:end]), "�"),
				})
			}
		}

		offset += paddedSize(size)
	}

	return entries
}

func isZeroBlock(block []byte) bool {
	for _, b := range block {
		if b != 0 {
			return false
		}
	}
	return true
}

// decodeName trims the fixed-width name field at the first NUL and converts
// it permissively, replacing invalid byte sequences instead of failing.
func decodeName(field []byte) string {
	end := len(field)
	for i, b := range field {
		if b == 0 {
			end = i
			break
		}
	}
	return strings.ToValidUTF8(string(field[:end]), "�")
}

// decodeSize interprets the 12-byte octal ASCII size field, trimmed at the
// first NUL or space. Unparsable or empty fields count as zero.
func decodeSize(field []byte) int {
	end := len(field)
	for i, b := range field {
		if b == 0 || b == ' ' {
			end = i
			break
		}
	}

	value, err := strconv.ParseInt(string(field[:end]), 8, 64)
	if err != nil || value < 0 {
		return 0
	}
	return int(value)
}

func paddedSize(size int) int {
	return (size + blockSize - 1) / blockSize * blockSize
}
