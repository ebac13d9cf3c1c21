package icons

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// FromImages builds a Set from artwork keyed by Names. Each image's alpha
// channel is resampled to its slot size, so artwork can be drawn at any
// resolution.
func FromImages(imgs map[string]image.Image) (Set, error) {
	var s Set
	for i, b := range s.bitmaps() {
		src, ok := imgs[Names[i]]
		if !ok {
			return Set{}, fmt.Errorf("icons: missing %s", Names[i])
		}
		dst := image.NewAlpha(image.Rect(0, 0, slotWidth(i), Height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		*b = Pack(dst)
	}
	return s, nil
}

// Images unpacks every bitmap of s, keyed by Names.
func (s Set) Images() map[string]*image.Alpha {
	out := make(map[string]*image.Alpha, len(Names))
	for i, b := range s.bitmaps() {
		out[Names[i]] = b.Image()
	}
	return out
}
