package tarball

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// recordSize is the fixed size of a POSIX tar record. Every header
// occupies exactly one record and every payload is padded to a record
// boundary.
const recordSize = 512

// FileEntry is a regular file recovered from a package tarball.
type FileEntry struct {
	// Path is the entry name with the archive's top-level directory
	// stripped (npm wraps all files in a "package/" directory).
	Path string

	// Content is the payload decoded as UTF-8 text.
	Content string
}

// header holds the two fields consumed from a 512-byte tar record: the
// entry name and the payload size. All other POSIX header fields (mode,
// uid, checksum, typeflag, prefix, ...) are ignored.
type header struct {
	name string
	size int64
}

// parseHeader reads the entry name and payload size from a raw tar
// record. It reports false for records that do not carry a usable
// (name, size) pair: zero-filled end-of-archive markers, headers with an
// empty name, or a size field that is not valid octal. Callers skip such
// records and continue at the next 512-byte boundary, which keeps
// extraction best-effort without ad hoc continue statements.
func parseHeader(record []byte) (header, bool) {
	name := cstring(record[:100])
	if name == "" {
		return header{}, false
	}
	sizeStr := strings.Trim(cstring(record[124:136]), " ")
	size, err := strconv.ParseInt(sizeStr, 8, 64)
	if err != nil || size < 0 {
		return header{}, false
	}
	return header{name: name, size: size}, true
}

// cstring returns the bytes up to the first NUL as a string.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// paddedSize returns the space an entry payload occupies in the stream:
// the declared size rounded up to the next record boundary.
func paddedSize(size int64) int64 {
	return (size + recordSize - 1) / recordSize * recordSize
}

// stripRoot removes the first path segment from a tar entry name,
// including the separator. A name without a separator (the archive root
// marker itself) reduces to the empty string.
func stripRoot(name string) string {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// Extract decompresses a gzip-compressed npm tarball and returns its
// regular files in the order they appear in the archive.
//
// The first path segment is stripped from every entry name. Directory
// entries, entries whose stripped path is empty, and records whose header
// cannot be parsed are dropped. Truncated archives yield a partial result
// rather than an error; only invalid gzip input fails, wrapped in
// [ErrDecompression].
//
// Extract is a pure function over its input and is safe to call
// concurrently on independent buffers.
func Extract(compressed []byte) ([]FileEntry, error) {
	data, err := inflate(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	var entries []FileEntry
	size := int64(len(data))
	for cursor := int64(0); cursor+recordSize <= size; {
		hdr, ok := parseHeader(data[cursor : cursor+recordSize])
		cursor += recordSize
		if !ok {
			continue
		}

		var content string
		if hdr.size > 0 {
			end := cursor + hdr.size
			if end > size {
				// Truncated payload: keep what is there. The cursor
				// advances past the end, ending the walk.
				end = size
			}
			content = string(data[cursor:end])
			cursor += paddedSize(hdr.size)
		}

		path := stripRoot(hdr.name)
		if path == "" || strings.HasSuffix(path, "/") {
			continue
		}
		entries = append(entries, FileEntry{Path: path, Content: content})
	}
	return entries, nil
}

// inflate gzip-decodes the full buffer into memory. Inputs are npm
// package tarballs, bounded in practice to low tens of megabytes, so no
// streaming is attempted.
func inflate(compressed []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
