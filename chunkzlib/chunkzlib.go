// Package chunkzlib implements the chunked zlib container that wraps a
// save file's body: the decompressed payload is split into bounded
// blocks, each independently zlib-compressed and framed with a fixed
// magic header, concatenated one after another until EOF.
package chunkzlib

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/lordralinc/sat-sav-parse/cursor"
	"github.com/lordralinc/sat-sav-parse/errs"
)

// MaxChunkSize bounds the decompressed size of any chunk this package
// writes. It is not validated when reading (the source never checks it
// either): a chunk's declared max is informational only.
const MaxChunkSize = 131072

const (
	magicWordA  = 0x9E2A83C1
	magicWordB  = 0x22222222
	formatTag   = 0x03000000
	headerTagU8 = 0x00
)

// Decompress reads chunks from r until EOF, concatenating each chunk's
// decompressed payload, and returns the joined plaintext.
func Decompress(r *cursor.Reader) ([]byte, error) {
	var out bytes.Buffer
	for !r.AtEOF() {
		payload, err := decompressChunk(r)
		if err != nil {
			return nil, err
		}
		out.Write(payload)
	}
	return out.Bytes(), nil
}

func decompressChunk(r *cursor.Reader) ([]byte, error) {
	if _, err := cursor.Confirm(r, r.U32, uint32(magicWordA), errs.InvalidFile, "chunk magic word a"); err != nil {
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.U32, uint32(magicWordB), errs.InvalidFile, "chunk magic word b"); err != nil {
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.U8, uint8(headerTagU8), errs.InvalidFile, "chunk header tag"); err != nil {
		return nil, err
	}
	if _, err := r.U32(); err != nil { // declared max chunk size, unchecked
		return nil, err
	}
	if _, err := cursor.Confirm(r, r.U32, uint32(formatTag), errs.InvalidFile, "chunk format tag"); err != nil {
		return nil, err
	}

	compressedSize1, err := r.U64()
	if err != nil {
		return nil, err
	}
	uncompressedSize1, err := r.U64()
	if err != nil {
		return nil, err
	}
	compressedSize2, err := r.U64()
	if err != nil {
		return nil, err
	}
	uncompressedSize2, err := r.U64()
	if err != nil {
		return nil, err
	}
	if compressedSize1 != compressedSize2 || uncompressedSize1 != uncompressedSize2 {
		return nil, errs.New(errs.InvalidFile, "chunk size pair mismatch: compressed %d/%d uncompressed %d/%d",
			compressedSize1, compressedSize2, uncompressedSize1, uncompressedSize2)
	}

	compressed, err := r.Raw(int(compressedSize1))
	if err != nil {
		return nil, errs.Wrap(err, "chunk compressed body (%d bytes)", compressedSize1)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errs.New(errs.InvalidFile, "chunk zlib stream invalid: %v", err)
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, errs.New(errs.InvalidFile, "chunk zlib decompress failed: %v", err)
	}
	if uint64(len(decompressed)) != uncompressedSize1 {
		return nil, errs.New(errs.InvalidSize, "chunk decompressed size %d, expected %d", len(decompressed), uncompressedSize1)
	}
	return decompressed, nil
}

// Compress splits payload into ≤MaxChunkSize-byte slices and writes each
// as an independently zlib-compressed, magic-framed chunk to w. The
// resulting byte stream is not guaranteed byte-identical to any
// particular reference encoder (zlib level and split points are
// implementation-defined); only the round-tripped payload is a promise.
func Compress(w *cursor.Writer, payload []byte) error {
	if len(payload) == 0 {
		return writeChunk(w, nil)
	}
	for offset := 0; offset < len(payload); offset += MaxChunkSize {
		end := offset + MaxChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		if err := writeChunk(w, payload[offset:end]); err != nil {
			return err
		}
	}
	return nil
}

func writeChunk(w *cursor.Writer, block []byte) error {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(block); err != nil {
		return errs.New(errs.InvalidFile, "chunk zlib compress failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		return errs.New(errs.InvalidFile, "chunk zlib compress failed: %v", err)
	}

	w.AddU32(magicWordA)
	w.AddU32(magicWordB)
	w.AddU8(headerTagU8)
	w.AddU32(MaxChunkSize)
	w.AddU32(formatTag)

	compressedSize := uint64(compressed.Len())
	uncompressedSize := uint64(len(block))
	w.AddU64(compressedSize)
	w.AddU64(uncompressedSize)
	w.AddU64(compressedSize)
	w.AddU64(uncompressedSize)
	w.AddRaw(compressed.Bytes())
	return nil
}
