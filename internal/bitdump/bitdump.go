// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package bitdump prints the bit pattern of a binary file, four bytes per
// line, prefixed by the offset of the first byte.
package bitdump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/bitdump/pkg/errors"
)

// ChunkSize is the number of bytes shown on each line.
const ChunkSize = 4

// DefaultInput is the file dumped when no path is given.
const DefaultInput = "output.bin"

// Chunk is a run of 1 to ChunkSize bytes starting at a multiple of
// ChunkSize.
type Chunk struct {
	Offset uint64
	Bytes  []byte
}

// String returns the dump line for the chunk, without a newline.
func (c Chunk) String() string {
	return FormatOffset(c.Offset) + ": " + FormatBits(c.Bytes)
}

// Chunks splits data into chunks in offset order. The last chunk is short if
// len(data) is not a multiple of ChunkSize.
func Chunks(data []byte) []Chunk {
	chunks := make([]Chunk, 0, (len(data)+ChunkSize-1)/ChunkSize)
	for i := 0; i < len(data); i += ChunkSize {
		end := min(i+ChunkSize, len(data))
		chunks = append(chunks, Chunk{Offset: uint64(i), Bytes: data[i:end]})
	}
	return chunks
}

// FormatOffset formats an offset as at least 8 upper-case hex digits.
func FormatOffset(off uint64) string {
	return fmt.Sprintf("%08X", off)
}

// FormatBits formats each byte as 8 binary digits, most significant bit
// first, with no separator between bytes.
func FormatBits(b []byte) string {
	var sb strings.Builder
	sb.Grow(8 * len(b))
	for _, v := range b {
		fmt.Fprintf(&sb, "%08b", v)
	}
	return sb.String()
}

// ReadFile reads the whole file. The file is closed before ReadFile returns.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.InputUnavailable.Wrap(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.InputUnavailable.Wrap(err)
	}
	return data, nil
}

// Dumper writes dump lines.
type Dumper struct {
	logger zerolog.Logger
}

// New returns a Dumper that logs to the given logger.
func New(logger zerolog.Logger) *Dumper {
	return &Dumper{logger: logger}
}

// Dump writes one line per chunk of data to w and returns the number of
// lines written.
func (d *Dumper) Dump(w io.Writer, data []byte) (int, error) {
	var n int
	for _, c := range Chunks(data) {
		_, err := io.WriteString(w, c.String()+"\n")
		if err != nil {
			return n, errors.UnknownError.WithCauseAndFormat(err, "write line at %s: %v", FormatOffset(c.Offset), err)
		}
		n++
	}
	return n, nil
}

// DumpFile reads the file at path in full, then dumps it to w. Nothing is
// written if the file cannot be read.
func (d *Dumper) DumpFile(w io.Writer, path string) (int, error) {
	data, err := ReadFile(path)
	if err != nil {
		return 0, err
	}

	d.logger.Debug().
		Str("file", path).
		Str("size", humanize.IBytes(uint64(len(data)))).
		Int("lines", (len(data)+ChunkSize-1)/ChunkSize).
		Msg("Loaded input")

	return d.Dump(w, data)
}
