package satsave

import (
	"github.com/lordralinc/sat-sav-parse/chunkzlib"
	"github.com/lordralinc/sat-sav-parse/cursor"
)

// Parse decodes a complete save file: a Header prefix followed by a
// chunked-zlib compressed Body.
func Parse(data []byte, opts ...cursor.Option) (*Header, *Body, error) {
	r := cursor.NewReader(data, opts...)

	header, err := DecodeHeader(r)
	if err != nil {
		return nil, nil, err
	}

	decompressed, err := chunkzlib.Decompress(r)
	if err != nil {
		return nil, nil, err
	}

	bodyReader := cursor.NewReader(decompressed, opts...)
	body, err := DecodeBody(bodyReader)
	if err != nil {
		return nil, nil, err
	}

	return header, body, nil
}

// Emit re-encodes header and body into a save file. The compressed
// body is not guaranteed byte-identical to any source file (chunk
// split points and zlib parameters are implementation-defined); only
// the decompressed payload round-trips.
func Emit(header *Header, body *Body, opts ...cursor.Option) ([]byte, error) {
	headerWriter := cursor.NewWriter(opts...)
	EncodeHeader(headerWriter, header)

	bodyWriter := cursor.NewWriter(opts...)
	EncodeBody(bodyWriter, body)

	out := headerWriter
	if err := chunkzlib.Compress(out, bodyWriter.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
