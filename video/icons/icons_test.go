package icons

import (
	"bytes"
	"errors"
	"image"
	"io"
	"testing"
)

func TestPackNibbleOrder(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 3, 1))
	img.Pix[0] = 0x10
	img.Pix[1] = 0xf0
	img.Pix[2] = 0x7f
	b := Pack(img)
	if len(b.Data) != 2 {
		t.Fatalf("data = %d bytes want 2", len(b.Data))
	}
	if b.Data[0] != 0xf1 || b.Data[1] != 0x07 {
		t.Fatalf("data = % x want f1 07", b.Data)
	}
	if b.Alpha(0, 0) != 1 || b.Alpha(1, 0) != 0xf || b.Alpha(2, 0) != 7 {
		t.Fatal("Alpha does not read back packed values")
	}
	if got := b.Image().Pix[1]; got != 0xff {
		t.Fatalf("expanded alpha = %#02x", got)
	}
}

func TestDefaultSetValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	covered := func(b Bitmap) int {
		n := 0
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				if b.Alpha(x, y) != 0 {
					n++
				}
			}
		}
		return n
	}
	for i, b := range s.bitmaps() {
		if covered(*b) == 0 {
			t.Fatalf("%s is empty", Names[i])
		}
	}
	if covered(s.SpeakerShadow) <= covered(s.Speaker) {
		t.Fatal("speaker shadow should be larger than the speaker")
	}
	if covered(s.Bar) <= covered(s.Dot) {
		t.Fatal("bar should cover more than the dot")
	}
}

func TestValidateRejectsWrongSize(t *testing.T) {
	s := Default()
	s.Bar = Pack(image.NewAlpha(image.Rect(0, 0, 10, Height)))
	if err := s.Validate(); err == nil {
		t.Fatal("expected size error")
	}
}

func TestBitmapFileRoundTrip(t *testing.T) {
	b := Default().Speaker
	var buf bytes.Buffer
	if err := WriteBitmap(&buf, b); err != nil {
		t.Fatalf("WriteBitmap: %v", err)
	}
	if buf.Len() != HeaderSize+len(b.Data) {
		t.Fatalf("encoded %d bytes", buf.Len())
	}
	got, err := ReadBitmap(&buf)
	if err != nil {
		t.Fatalf("ReadBitmap: %v", err)
	}
	if got.Width != b.Width || got.Height != b.Height || !bytes.Equal(got.Data, b.Data) {
		t.Fatal("round trip mismatch")
	}
}

func TestReadBitmapErrors(t *testing.T) {
	if _, err := ReadBitmap(bytes.NewReader([]byte("XXXX\x01\x00\x01\x00\x00"))); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("err = %v want ErrBadMagic", err)
	}
	if _, err := ReadBitmap(bytes.NewReader([]byte("NIB1\x04\x00\x04\x00\x00"))); err == nil {
		t.Fatal("expected short data error")
	}
	if _, err := ReadBitmap(bytes.NewReader([]byte("NIB1\xff\xff\xff\xff"))); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v want ErrTooLarge", err)
	}
	if _, err := ReadBitmap(bytes.NewReader([]byte("NIB1\x20\x00\x41\x00"))); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("65 rows: err = %v want ErrTooLarge", err)
	}
	wide := Bitmap{Width: MaxWidth + 2, Height: 1, Data: make([]byte, (MaxWidth+2)/2)}
	if err := WriteBitmap(io.Discard, wide); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("write err = %v want ErrTooLarge", err)
	}
}

func TestSetDirRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := Default()
	if err := s.WriteDir(dir); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}
	got, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if !bytes.Equal(got.DotShadow.Data, s.DotShadow.Data) {
		t.Fatal("dot shadow differs after reload")
	}
}

func TestFromImagesResamples(t *testing.T) {
	imgs := map[string]image.Image{}
	for i, name := range Names {
		img := image.NewAlpha(image.Rect(0, 0, 2*slotWidth(i), 2*Height))
		for j := range img.Pix {
			img.Pix[j] = 0xff
		}
		imgs[name] = img
	}
	s, err := FromImages(imgs)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if s.Speaker.Alpha(0, 0) != 0xf || s.DotShadow.Alpha(SlotWidth-1, Height-1) != 0xf {
		t.Fatal("opaque artwork should stay opaque")
	}

	delete(imgs, "bar")
	if _, err := FromImages(imgs); err == nil {
		t.Fatal("expected an error for missing artwork")
	}
}

func TestImagesRoundTrip(t *testing.T) {
	want := Default()
	imgs := map[string]image.Image{}
	for name, img := range want.Images() {
		imgs[name] = img
	}
	got, err := FromImages(imgs)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range got.bitmaps() {
		if !bytes.Equal(b.Data, want.bitmaps()[i].Data) {
			t.Fatalf("%s changed after a same-size round trip", Names[i])
		}
	}
}
