// Package tartest builds synthetic npm-style tarballs for tests.
//
// Archives are assembled record by record rather than through archive/tar
// so tests control the exact bytes of every header, including malformed
// ones.
package tartest

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

const recordSize = 512

// File holds data for building one test archive entry.
type File struct {
	// Name is the full tar entry name, e.g. "package/index.js".
	Name string

	// Content is the entry payload. Ignored for directories.
	Content string

	// Dir marks the entry as a directory (size 0, name should end in "/").
	Dir bool
}

// Header builds a 512-byte tar header record carrying only the fields the
// extractor consumes: the entry name at offset 0 and an octal size at
// offset 124. Tests may mutate the returned slice to produce malformed
// records.
func Header(name string, size int64) []byte {
	record := make([]byte, recordSize)
	copy(record, name)
	copy(record[124:], fmt.Sprintf("%011o", size))
	return record
}

// Records serializes files as a raw tar stream: one header per entry,
// payloads padded to the record boundary, followed by the two zero-filled
// end-of-archive records.
func Records(files ...File) []byte {
	var buf bytes.Buffer
	for _, f := range files {
		if f.Dir {
			buf.Write(Header(f.Name, 0))
			continue
		}
		buf.Write(Header(f.Name, int64(len(f.Content))))
		buf.WriteString(f.Content)
		if pad := len(f.Content) % recordSize; pad != 0 {
			buf.Write(make([]byte, recordSize-pad))
		}
	}
	buf.Write(make([]byte, 2*recordSize))
	return buf.Bytes()
}

// Gzip compresses raw bytes the way the registry serves tarballs.
func Gzip(data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Archive builds a complete gzip-compressed tarball from files.
func Archive(files ...File) []byte {
	return Gzip(Records(files...))
}
