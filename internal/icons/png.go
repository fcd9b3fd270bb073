// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// encodePNG encodes m as an 8-bit truecolor PNG with alpha.
//
// image/png writes opaque images without the alpha channel, so it can't be
// used for icons that must always be RGBA.
func encodePNG(m *image.NRGBA) ([]byte, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	// Compression, filter and interlace methods stay zero.

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	// Each scanline starts with filter type 0 (none).
	row := make([]byte, 1+4*w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		copy(row[1:], m.Pix[i:i+4*w])
		if _, err := zw.Write(row); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(pngHeader)
	writeChunk(&buf, "IHDR", ihdr[:])
	writeChunk(&buf, "IDAT", idat.Bytes())
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes(), nil
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], typ)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)

	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	buf.Write(hdr[:])
	buf.Write(data)
	buf.Write(footer[:])
}
