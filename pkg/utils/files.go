package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
)

// ErrEmptyArchive is returned when an archive contains no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if necessary.
// The compression type is determined from the file extension, archives
// (.zip and .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	decoder, closer, err := decoderFor(ext, data)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", filename, err)
	}
	if decoder == nil {
		// return the data as is
		return data, nil
	}
	if closer != nil {
		defer closer.Close()
	}

	// read the decompressed data into a byte slice
	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", filename, err)
	}
	return data, nil
}

// decoderFor returns a reader decompressing data according to ext, or a
// nil reader if ext is not a known compression type.
func decoderFor(ext string, data []byte) (io.Reader, io.Closer, error) {
	r := bytes.NewReader(data)
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz, nil
	case ".br":
		br := cbrotli.NewReader(r)
		return br, br, nil
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, nil, ErrEmptyArchive
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, nil, err
		}
		return rc, rc, nil
	case ".7z":
		archive, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, nil, err
		}
		if len(archive.File) == 0 {
			return nil, nil, ErrEmptyArchive
		}

		// read the first file in the archive
		rc, err := archive.File[0].Open()
		if err != nil {
			return nil, nil, err
		}
		return rc, rc, nil
	}
	return nil, nil, nil
}
