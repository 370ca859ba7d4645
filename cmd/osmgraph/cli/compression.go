// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

var ErrUnknownCompressionType = errors.New("unknown compression type")

// Compression is the compression of a document file, chosen by its
// extension.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	Lz4
	Xz
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Lz4:
		return "lz4"
	case Xz:
		return "xz"
	default:
		return fmt.Sprintf("compression(%d)", int(c))
	}
}

// CompressionOf returns the compression implied by a file name.
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	case ".lz4":
		return Lz4
	case ".xz":
		return Xz
	default:
		return None
	}
}

// NewReader wraps r with a decompressor. Closing the result does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	var (
		rdr io.ReadCloser
		err error
	)

	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		rdr, err = gzip.NewReader(r)
	case Zstd:
		var d *zstd.Decoder
		if d, err = zstd.NewReader(r); err == nil {
			rdr = d.IOReadCloser()
		}
	case Lz4:
		rdr = io.NopCloser(lz4.NewReader(r))
	case Xz:
		var x *xz.Reader
		if x, err = xz.NewReader(r); err == nil {
			rdr = io.NopCloser(x)
		}
	default:
		return nil, ErrUnknownCompressionType
	}

	if err != nil {
		return nil, fmt.Errorf("unable to open %s reader: %w", c, err)
	}

	return rdr, nil
}

// NewWriter wraps w with a compressor. Closing the result flushes the
// compressor but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	var (
		wtr io.WriteCloser
		err error
	)

	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		wtr = gzip.NewWriter(w)
	case Zstd:
		wtr, err = zstd.NewWriter(w)
	case Lz4:
		wtr = lz4.NewWriter(w)
	case Xz:
		wtr, err = xz.NewWriter(w)
	default:
		return nil, ErrUnknownCompressionType
	}

	if err != nil {
		return nil, fmt.Errorf("unable to open %s writer: %w", c, err)
	}

	return wtr, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
