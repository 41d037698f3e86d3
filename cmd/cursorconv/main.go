// Package main converts an image file into a native cursor image.
package main

import (
	"context"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
	// register webp decoding.
	_ "golang.org/x/image/webp"

	"github.com/edaniels/gocursor"
	"github.com/edaniels/gocursor/pkg/platform"
)

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

var logger = golog.Global().Named("cursorconv")

// Arguments for the command.
type Arguments struct {
	Input string `flag:"0,required,usage=image to convert"`
	HotX  int    `flag:"hotx,usage=hotspot x"`
	HotY  int    `flag:"hoty,usage=hotspot y"`
	Out   string `flag:"out,usage=output file; .png writes an upright preview and anything else raw ARGB bytes in native cursor row order"`
	Pad   bool   `flag:"pad,usage=pad the image up to power-of-two dimensions"`
	Fit   bool   `flag:"fit,usage=resize the image up to power-of-two dimensions"`
	Scale int    `flag:"scale,usage=high-DPI scale factor"`
	Order string `flag:"order,usage=pixel word order (native big little)"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.Pad && argsParsed.Fit {
		return errors.New("only one of -pad and -fit may be set")
	}
	order, err := parseOrder(argsParsed.Order)
	if err != nil {
		return err
	}
	return convert(ctx, argsParsed, order, logger)
}

func parseOrder(name string) (binary.ByteOrder, error) {
	switch strings.ToLower(name) {
	case "", "native":
		return binary.NativeEndian, nil
	case "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	default:
		return nil, errors.Errorf("unknown byte order %q", name)
	}
}

func convert(ctx context.Context, args Arguments, order binary.ByteOrder, logger golog.Logger) (err error) {
	img, err := imaging.Open(args.Input)
	if err != nil {
		return errors.Wrapf(err, "error opening %q", args.Input)
	}

	hotspot := image.Pt(args.HotX, args.HotY)
	size := img.Bounds().Size()
	switch {
	case args.Pad:
		img = gocursor.PadToPowerOfTwo(img)
	case args.Fit:
		img = gocursor.ResizeToPowerOfTwo(img)
		hotspot = gocursor.ScaleHotspotTo(hotspot, size, img.Bounds().Size())
	}

	pixmap := gocursor.PixmapFromImage(img)
	pixmap.SetByteOrder(order)

	recorder := platform.NewRecorder()
	manager, err := gocursor.NewCursorManager(gocursor.CursorManagerConfig{
		Platform:    recorder,
		ScaleFactor: args.Scale,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, manager.Close(ctx))
	}()

	cursor, err := manager.NewCursor(pixmap, hotspot.X, hotspot.Y)
	if err != nil {
		return err
	}
	if err := manager.SetCursor(cursor); err != nil {
		return err
	}
	logger.Infow("converted cursor",
		"input", args.Input,
		"width", cursor.Image().Bounds().Dx(),
		"height", cursor.Image().Bounds().Dy(),
		"hotspot", cursor.Hotspot())

	if args.Out == "" {
		return nil
	}
	return writeCursor(args.Out, cursor.Image())
}

func writeCursor(path string, img *gocursor.ARGBImage) (err error) {
	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %q", path)
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	if strings.EqualFold(filepath.Ext(path), ".png") {
		// rows are stored bottom up for the native cursor API
		return png.Encode(f, imaging.FlipV(img))
	}
	_, err = f.Write(img.Pix)
	return err
}
