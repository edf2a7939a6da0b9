// Package scanner discovers C/C++ source files and reads them into line
// buffers for the extraction pipeline.
//
// Discovery walks the project root lexically, filters by extension, skips
// hidden directories, and optionally honors the root .gitignore. Reading
// fans out over an errgroup worker pool while preserving input order, so
// the strictly sequential extraction stage still sees files in
// deterministic order.
package scanner
