package graynorm

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type compression byte

const (
	compressionNone compression = iota
	compressionGzip
	compressionZip
	compressionXZ
	compressionZ
	compressionBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[compression][]byte{
	compressionGzip:  {0x1f, 0x8b, 0x08},
	compressionZip:   {0x50, 0x4b, 0x03, 0x04},
	compressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	compressionZ:     {0x1f, 0x9d},
	compressionBZip2: {0x42, 0x5a, 0x68},
}

// maybeDecompress sniffs r's leading bytes for a known compression signature
// and, when one matches, wraps r in the matching decompressor. Expression
// tables exported from plate readers frequently arrive gzipped or zipped.
func maybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	sig, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch detectCompression(sig) {
	case compressionGzip:
		return gzip.NewReader(br)
	case compressionZip:
		return zipstream.NewReader(br), nil
	case compressionXZ:
		return xz.NewReader(br, 0)
	case compressionZ:
		// 0x1f 0x9d is Unix compress (LZW); zlib will reject a true .Z
		// stream at read time rather than decode it.
		return zlib.NewReader(br)
	case compressionBZip2:
		return bzip2.NewReader(br), nil
	}

	return br, nil
}

func detectCompression(sig []byte) compression {
	for c, want := range compressionSigs {
		if len(sig) >= len(want) && bytes.Equal(sig[:len(want)], want) {
			return c
		}
	}
	return compressionNone
}
