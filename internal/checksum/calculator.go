package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mdrepo/mdrmeta/internal/metadata"
)

// Calculator computes document checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string

	// CalculateRecord computes a checksum of the record's JSON encoding.
	// Two canonical records with equal content hash equally regardless of
	// the encoding they were read from.
	CalculateRecord(rec metadata.Record) (string, error)
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization:
//  1. Drop a leading UTF-8 byte order mark
//  2. Remove # comments while preserving string literals
//  3. Convert line endings to \n and trim trailing whitespace per line
//  4. Drop blank lines
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(c.normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

// CalculateRecord computes SHA-256 of the record encoded as JSON.
func (c SHA256) CalculateRecord(rec metadata.Record) (string, error) {
	data, err := metadata.Encode(rec, metadata.FormatJSON)
	if err != nil {
		return "", fmt.Errorf("failed to encode record for checksum: %w", err)
	}
	return c.CalculateRaw(data), nil
}

func (c SHA256) normalize(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	cleaned := c.removeComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

type commentState int

const (
	csNormal commentState = iota
	csComment
	csBasic
	csLiteral
	csMultiBasic
	csMultiLiteral
)

// removeComments removes # comments up to the end of the line.
// Handles basic ("..."), literal ('...') and multi-line (""" and ''')
// strings, including backslash escapes in basic strings.
func (c SHA256) removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := csNormal
	i := 0
	for i < len(content) {
		ch := content[i]

		switch state {
		case csNormal:
			switch {
			case ch == '#':
				state = csComment
				i++
			case strings.HasPrefix(content[i:], `"""`):
				state = csMultiBasic
				b.WriteString(`"""`)
				i += 3
			case strings.HasPrefix(content[i:], `'''`):
				state = csMultiLiteral
				b.WriteString(`'''`)
				i += 3
			case ch == '"':
				state = csBasic
				b.WriteByte(ch)
				i++
			case ch == '\'':
				state = csLiteral
				b.WriteByte(ch)
				i++
			default:
				b.WriteByte(ch)
				i++
			}

		case csComment:
			if ch == '\n' {
				b.WriteByte(ch)
				state = csNormal
			}
			i++

		case csBasic:
			b.WriteByte(ch)
			switch {
			case ch == '\\' && i+1 < len(content):
				b.WriteByte(content[i+1])
				i += 2
			case ch == '"' || ch == '\n':
				state = csNormal
				i++
			default:
				i++
			}

		case csLiteral:
			b.WriteByte(ch)
			if ch == '\'' || ch == '\n' {
				state = csNormal
			}
			i++

		case csMultiBasic:
			if ch == '\\' && i+1 < len(content) {
				b.WriteByte(ch)
				b.WriteByte(content[i+1])
				i += 2
			} else if strings.HasPrefix(content[i:], `"""`) {
				b.WriteString(`"""`)
				state = csNormal
				i += 3
			} else {
				b.WriteByte(ch)
				i++
			}

		case csMultiLiteral:
			if strings.HasPrefix(content[i:], `'''`) {
				b.WriteString(`'''`)
				state = csNormal
				i += 3
			} else {
				b.WriteByte(ch)
				i++
			}
		}
	}

	return b.String()
}
