// Package resolver resolves image references in a Markdown source to byte
// payloads ready for embedding. Local references are resolved against the
// source file's directory; remote http(s) references are resolved only
// through an externally supplied Fetcher, keeping the core free of network
// I/O. Resolution failures are reported as errors for the caller to turn
// into non-fatal warnings — they never abort a conversion.
package resolver
