// SPDX-License-Identifier: EPL-2.0

package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
)

// EncodeICO writes the images as one multi-resolution ICO container.
// Entries are PNG-compressed and stored in the given order. Widths or
// heights of 256 and above are encoded as 0 per the ICONDIRENTRY
// format. Returns ErrNoImages for an empty input.
func EncodeICO(w io.Writer, images []*image.NRGBA) error {
	if len(images) == 0 {
		return ErrNoImages
	}

	pngs := make([][]byte, len(images))
	for i, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
		pngs[i] = buf.Bytes()
	}

	var out bytes.Buffer

	// ICONDIR: reserved, type (1 = icon), count.
	binary.Write(&out, binary.LittleEndian, [3]uint16{0, 1, uint16(len(images))})

	offset := uint32(6 + 16*len(images))
	for i, img := range images {
		bounds := img.Bounds()
		wByte := uint8(bounds.Dx())
		if bounds.Dx() >= 256 {
			wByte = 0
		}
		hByte := uint8(bounds.Dy())
		if bounds.Dy() >= 256 {
			hByte = 0
		}

		out.Write([]byte{wByte, hByte, 0, 0})                         // width, height, palette, reserved
		binary.Write(&out, binary.LittleEndian, uint16(1))            // color planes
		binary.Write(&out, binary.LittleEndian, uint16(32))           // bits per pixel
		binary.Write(&out, binary.LittleEndian, uint32(len(pngs[i]))) // data size
		binary.Write(&out, binary.LittleEndian, offset)               // data offset
		offset += uint32(len(pngs[i]))
	}

	for _, p := range pngs {
		out.Write(p)
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("writing ico: %w", err)
	}
	return nil
}
