// Package tarball extracts file contents from gzip-compressed npm package
// tarballs.
//
// npm publishes every package as a gzipped POSIX tar stream whose entries
// all live under a single top-level directory (conventionally "package/").
// [Extract] decompresses such a tarball and walks its 512-byte records
// directly, returning the regular files with that top-level directory
// stripped from every path.
//
// Extraction is deliberately best-effort: records whose header cannot be
// parsed into a usable (name, size) pair are skipped, and a truncated
// archive yields the entries recovered before the truncation point rather
// than an error. Only invalid gzip input fails, with [ErrDecompression].
//
// Payloads are decoded as UTF-8 text. The package optimizes for source and
// text-asset inspection; binary payloads survive extraction but are not
// decoded binary-safely.
package tarball
