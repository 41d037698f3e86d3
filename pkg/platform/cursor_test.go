package platform_test

import (
	"errors"
	"image"
	"testing"

	"go.viam.com/test"

	"github.com/edaniels/gocursor"
	"github.com/edaniels/gocursor/pkg/platform"
)

type update struct {
	img           image.Image
	width, height int
	hotx, hoty    int
}

func TestCursorHandle(t *testing.T) {
	h := platform.NewCursorHandle()
	var updates []update
	h.SetCallback(func(img image.Image, width, height, hotx, hoty int) {
		updates = append(updates, update{img, width, height, hotx, hoty})
	})
	var systems []gocursor.SystemCursor
	h.SetSystemCallback(func(c gocursor.SystemCursor) {
		systems = append(systems, c)
	})

	c, err := gocursor.Build(h, gocursor.NewPixmap(16, 16, gocursor.FormatRGBA8888), 4, 6)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, updates, test.ShouldBeEmpty)

	test.That(t, h.SetCursor(c.Native()), test.ShouldBeNil)
	test.That(t, updates, test.ShouldHaveLength, 1)
	test.That(t, updates[0].width, test.ShouldEqual, 16)
	test.That(t, updates[0].height, test.ShouldEqual, 16)
	test.That(t, updates[0].hotx, test.ShouldEqual, 4)
	test.That(t, updates[0].hoty, test.ShouldEqual, 6)
	test.That(t, updates[0].img.Bounds().Size(), test.ShouldResemble, image.Pt(16, 16))

	h.UpdateScale(2)
	test.That(t, updates, test.ShouldHaveLength, 2)
	test.That(t, updates[1].width, test.ShouldEqual, 32)
	test.That(t, updates[1].height, test.ShouldEqual, 32)
	test.That(t, updates[1].hotx, test.ShouldEqual, 8)
	test.That(t, updates[1].hoty, test.ShouldEqual, 12)
	test.That(t, updates[1].img.Bounds().Size(), test.ShouldResemble, image.Pt(32, 32))

	test.That(t, h.SetCursor(nil), test.ShouldBeNil)
	test.That(t, updates, test.ShouldHaveLength, 3)
	test.That(t, updates[2].img, test.ShouldBeNil)

	test.That(t, h.SetSystemCursor(gocursor.SystemCursorIbeam), test.ShouldBeNil)
	test.That(t, systems, test.ShouldResemble, []gocursor.SystemCursor{gocursor.SystemCursorIbeam})

	test.That(t, c.Dispose(), test.ShouldBeNil)
}

func TestCursorHandleRejectsForeignCursors(t *testing.T) {
	h := platform.NewCursorHandle()
	other := platform.NewCursorHandle()
	c, err := gocursor.Build(other, gocursor.NewPixmap(2, 2, gocursor.FormatRGBA8888), 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, h.SetCursor(c.Native()), test.ShouldNotBeNil)

	rec := platform.NewRecorder()
	c, err = gocursor.Build(rec, gocursor.NewPixmap(2, 2, gocursor.FormatRGBA8888), 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, h.SetCursor(c.Native()), test.ShouldNotBeNil)
}

func TestCursorHandleCopiesImage(t *testing.T) {
	h := platform.NewCursorHandle()
	img := gocursor.NewARGBImage(2, 2)
	native, err := h.CreateCursor(img, image.Pt(1, 1))
	test.That(t, err, test.ShouldBeNil)
	img.Pix[0] = 0xFF

	var got image.Image
	h.SetCallback(func(img image.Image, width, height, hotx, hoty int) { got = img })
	test.That(t, h.SetCursor(native), test.ShouldBeNil)
	test.That(t, got.(*gocursor.ARGBImage).Pix[0], test.ShouldEqual, byte(0))
}

func TestCursorImageScale(t *testing.T) {
	c := platform.CursorImage{Img: gocursor.NewARGBImage(4, 4), Width: 4, Height: 4, Hotx: 3, Hoty: 3}
	test.That(t, c.Scale(1), test.ShouldResemble, c)

	half := c.Scale(0.5)
	test.That(t, half.Width, test.ShouldEqual, 2)
	test.That(t, half.Hotx, test.ShouldEqual, 1)
	test.That(t, half.Img.Bounds().Dx(), test.ShouldEqual, 2)

	empty := platform.CursorImage{}
	test.That(t, empty.Scale(2), test.ShouldResemble, empty)
}

func TestCursorHandleDestroyedCursor(t *testing.T) {
	h := platform.NewCursorHandle()
	var updates int
	h.SetCallback(func(img image.Image, width, height, hotx, hoty int) { updates++ })

	c, err := gocursor.Build(h, gocursor.NewPixmap(4, 4, gocursor.FormatRGBA8888), 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Dispose(), test.ShouldBeNil)

	err = h.SetCursor(c.Native())
	test.That(t, errors.Is(err, platform.ErrAlreadyDestroyed), test.ShouldBeTrue)
	test.That(t, updates, test.ShouldEqual, 0)
	test.That(t, errors.Is(c.Native().Destroy(), platform.ErrAlreadyDestroyed), test.ShouldBeTrue)
}
