// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bitdump

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"gitlab.com/accumulatenetwork/bitdump/pkg/errors"
)

// Decode parses dump output and returns the bytes it describes. Offsets must
// start at zero and advance by ChunkSize, and only the last line may hold
// fewer than ChunkSize bytes.
func Decode(r io.Reader) ([]byte, error) {
	var data []byte
	var short bool
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if short {
			return nil, errors.BadRequest.WithFormat("line %d: short chunk before end of dump", line-1)
		}

		b, err := decodeLine(scanner.Text(), uint64(len(data)))
		if err != nil {
			return nil, errors.BadRequest.WithCauseAndFormat(err, "line %d: %v", line, err)
		}
		data = append(data, b...)
		short = len(b) < ChunkSize
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	return data, nil
}

func decodeLine(s string, offset uint64) ([]byte, error) {
	off, bits, ok := strings.Cut(s, ": ")
	if !ok {
		return nil, errors.BadRequest.With("missing separator")
	}
	if want := FormatOffset(offset); off != want {
		return nil, errors.BadRequest.WithFormat("want offset %s, got %q", want, off)
	}
	if len(bits) == 0 || len(bits)%8 != 0 || len(bits) > 8*ChunkSize {
		return nil, errors.BadRequest.WithFormat("bit field has length %d", len(bits))
	}

	b := make([]byte, len(bits)/8)
	for i := range b {
		v, err := strconv.ParseUint(bits[i*8:i*8+8], 2, 8)
		if err != nil {
			return nil, errors.BadRequest.WithFormat("invalid bits %q", bits[i*8:i*8+8])
		}
		b[i] = byte(v)
	}
	return b, nil
}
