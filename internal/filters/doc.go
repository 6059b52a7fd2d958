// Package filters provides the PDF stream filters used by the exporter.
//
// Content streams of exported sheets are compressed with FlateDecode
// (zlib/deflate):
//
//	encoded, err := filters.FlateEncode(content, filters.DefaultCompression)
//	decoded, err := filters.FlateDecode(encoded)
//
// FlateDecode is the inverse and is used to inspect written streams.
package filters
