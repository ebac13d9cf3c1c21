package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"screenkit/video/icons"

	_ "golang.org/x/image/bmp"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input directory (artwork for encode, .nib files for decode).")
		outPath = flag.String("out", "", "Output directory.")
		mode    = flag.String("mode", "defaults", "defaults|encode|decode.")
	)
	flag.Parse()

	if *outPath == "" || (*mode != "defaults" && *inPath == "") {
		fatalf("usage: mkicons -mode defaults -out dir\n       mkicons -mode encode -in artwork -out dir\n       mkicons -mode decode -in dir -out artwork")
	}

	switch strings.ToLower(*mode) {
	case "defaults":
		if err := icons.Default().WriteDir(*outPath); err != nil {
			fatalf("defaults: %v", err)
		}
	case "encode":
		if err := encode(*inPath, *outPath); err != nil {
			fatalf("encode: %v", err)
		}
	case "decode":
		if err := decode(*inPath, *outPath); err != nil {
			fatalf("decode: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// encode reads <name>.png or <name>.bmp for every icon and writes the
// packed set.
func encode(inDir, outDir string) error {
	imgs := make(map[string]image.Image, len(icons.Names))
	for _, name := range icons.Names {
		img, err := readImage(inDir, name)
		if err != nil {
			return err
		}
		imgs[name] = img
	}
	set, err := icons.FromImages(imgs)
	if err != nil {
		return err
	}
	return set.WriteDir(outDir)
}

func readImage(dir, name string) (image.Image, error) {
	for _, ext := range []string{".png", ".bmp"} {
		f, err := os.Open(filepath.Join(dir, name+ext))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", name, ext, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%s: no .png or .bmp artwork in %s", name, dir)
}

// decode writes every bitmap of a packed set as an 8-bit alpha PNG.
func decode(inDir, outDir string) error {
	set, err := icons.LoadDir(inDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for name, img := range set.Images() {
		f, err := os.Create(filepath.Join(outDir, name+".png"))
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
