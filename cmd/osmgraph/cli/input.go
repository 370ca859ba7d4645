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
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressBar is an instance of ReadCloser with an associated ProgressBar.
// Closing this instance closes the delegate as well as clearing the terminal
// line of progress output.
type progressBar struct {
	r   io.ReadCloser
	bar *pb.ProgressBar
}

// WrapInputFile creates an instance of os.File with an associated
// ProgressBar that tracks the bytes read relative to the total.
func WrapInputFile(f *os.File) (io.ReadCloser, error) {
	if f == os.Stdin {
		return os.Stdin, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New64(fi.Size()).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = os.Stderr
	bar.Start()

	return progressBar{
		r:   bar.NewProxyReader(f),
		bar: bar,
	}, nil
}

func (pb progressBar) Read(p []byte) (int, error) {
	return pb.r.Read(p)
}

func (pb progressBar) Close() error {
	// make sure newline is not printed by Finish()
	pb.bar.Output = nil
	pb.bar.NotPrint = true

	pb.bar.Finish()

	fmt.Fprintf(os.Stderr, "\033[2K\r")

	return pb.r.Close()
}

// input is a decompressing reader over a file. Closing it closes both.
type input struct {
	io.ReadCloser
	file io.Closer
}

func (in input) Close() error {
	return errors.Join(in.ReadCloser.Close(), in.file.Close())
}

// OpenInput opens a document for reading, decompressing it according to
// its extension. An empty path or "-" reads stdin uncompressed. When
// progress is set, files report the bytes read on stderr.
func OpenInput(path string, progress bool) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var raw io.ReadCloser = f

	if progress {
		if raw, err = WrapInputFile(f); err != nil {
			f.Close()

			return nil, err
		}
	}

	rdr, err := NewReader(raw, CompressionOf(path))
	if err != nil {
		raw.Close()

		return nil, err
	}

	return input{ReadCloser: rdr, file: raw}, nil
}

// output is a compressing writer over a file. Closing it flushes the
// compressor, then closes the file.
type output struct {
	io.WriteCloser
	file io.Closer
}

func (out output) Close() error {
	return errors.Join(out.WriteCloser.Close(), out.file.Close())
}

// CreateOutput creates a document file, compressing it according to its
// extension. An empty path or "-" writes stdout uncompressed.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	wtr, err := NewWriter(f, CompressionOf(path))
	if err != nil {
		f.Close()

		return nil, err
	}

	return output{WriteCloser: wtr, file: f}, nil
}
