// Package registry provides a client for npm-compatible package registries
// and the npm downloads analytics API.
//
// The client resolves npm-style package specifiers ("react", "react@18.2.0",
// "react@^18.0.0", "@types/node@latest", or a direct tarball URL) to concrete
// published versions, fetches packuments (the registry's per-package
// document), downloads package tarballs, and queries daily download counts.
//
// All responses are decoded into explicit document types at the HTTP
// boundary; unexpected shapes fail decoding instead of propagating untyped
// data.
package registry
