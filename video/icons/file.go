package icons

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Magic bytes "NIB1".
const Magic = 0x3142494e // "NIB1" in little-endian

// HeaderSize is the fixed size of the file header.
const HeaderSize = 8

// Largest bitmap accepted: the atlas is 256 texels wide and icons live in
// the 64 rows below the source frame.
const (
	MaxWidth  = 256
	MaxHeight = 64
)

var (
	ErrBadMagic = errors.New("icons: invalid magic")
	ErrTooLarge = errors.New("icons: bitmap too large")
)

// ReadBitmap decodes a bitmap file: magic, width and height as
// little-endian u32/u16/u16, then the packed rows.
func ReadBitmap(r io.Reader) (Bitmap, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Bitmap{}, fmt.Errorf("icons: read header: %w", err)
	}
	if binary.LittleEndian.Uint32(hdr[0:4]) != Magic {
		return Bitmap{}, ErrBadMagic
	}
	b := Bitmap{
		Width:  int(binary.LittleEndian.Uint16(hdr[4:6])),
		Height: int(binary.LittleEndian.Uint16(hdr[6:8])),
	}
	if b.Width == 0 || b.Height == 0 {
		return Bitmap{}, fmt.Errorf("icons: invalid size %dx%d", b.Width, b.Height)
	}
	if b.Width > MaxWidth || b.Height > MaxHeight {
		return Bitmap{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, b.Width, b.Height)
	}
	b.Data = make([]byte, b.Stride()*b.Height)
	if _, err := io.ReadFull(r, b.Data); err != nil {
		return Bitmap{}, fmt.Errorf("icons: read data: %w", err)
	}
	return b, nil
}

// WriteBitmap encodes b in the format read by ReadBitmap.
func WriteBitmap(w io.Writer, b Bitmap) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.Width > MaxWidth || b.Height > MaxHeight {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, b.Width, b.Height)
	}
	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], Magic)
	binary.LittleEndian.PutUint16(hdr[4:6], uint16(b.Width))
	binary.LittleEndian.PutUint16(hdr[6:8], uint16(b.Height))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(b.Data)
	return err
}

// LoadDir reads <name>.nib for every entry of Names.
func LoadDir(dir string) (Set, error) {
	var s Set
	for i, b := range s.bitmaps() {
		f, err := os.Open(filepath.Join(dir, Names[i]+".nib"))
		if err != nil {
			return Set{}, err
		}
		*b, err = ReadBitmap(f)
		f.Close()
		if err != nil {
			return Set{}, fmt.Errorf("%s: %w", Names[i], err)
		}
	}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// WriteDir writes every bitmap of s as <name>.nib into dir.
func (s Set) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, b := range s.bitmaps() {
		f, err := os.Create(filepath.Join(dir, Names[i]+".nib"))
		if err != nil {
			return err
		}
		if err := WriteBitmap(f, *b); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", Names[i], err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
