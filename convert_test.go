package gocursor

import (
	"encoding/binary"
	"image/color"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func twoByTwo(t *testing.T) *Pixmap {
	t.Helper()
	p, err := NewPixmapFromBytes(2, 2, FormatRGBA8888, []byte{
		10, 20, 30, 255, 40, 50, 60, 128,
		70, 80, 90, 64, 100, 110, 120, 0,
	})
	test.That(t, err, test.ShouldBeNil)
	return p
}

func TestConvertFlipsAndReorders(t *testing.T) {
	expected := []byte{
		64, 70, 80, 90, 0, 100, 110, 120,
		255, 10, 20, 30, 128, 40, 50, 60,
	}
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian, binary.NativeEndian} {
		t.Run(order.String(), func(t *testing.T) {
			p := twoByTwo(t)
			p.SetByteOrder(order)
			img, err := Convert(p, 0, 0)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, img.Pix, test.ShouldResemble, expected)
			test.That(t, img.Bounds().Dx(), test.ShouldEqual, 2)
			test.That(t, img.Bounds().Dy(), test.ShouldEqual, 2)
			test.That(t, img.NRGBAAt(0, 1), test.ShouldResemble, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		})
	}
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	p := twoByTwo(t)
	before := append([]byte(nil), p.Pix()...)
	_, err := Convert(p, 1, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Pix(), test.ShouldResemble, before)
}

func TestConvertPowerOfTwoSizes(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, width := range []int{1, 2, 4, 8, 32} {
		for _, height := range []int{1, 2, 16, 64} {
			p := NewPixmap(width, height, FormatRGBA8888)
			r.Read(p.Pix())
			img, err := Convert(p, width-1, height-1)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, len(img.Pix), test.ShouldEqual, 4*width*height)
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					test.That(t, img.NRGBAAt(x, height-1-y), test.ShouldResemble, p.NRGBAAt(x, y))
				}
			}
		}
	}
}

func TestRGBAWordToARGB(t *testing.T) {
	rgba := []byte{0x11, 0x22, 0x33, 0x44}
	test.That(t, rgbaWordToARGB(binary.BigEndian.Uint32(rgba), true), test.ShouldEqual, uint32(0x44112233))
	test.That(t, rgbaWordToARGB(binary.LittleEndian.Uint32(rgba), false), test.ShouldEqual, uint32(0x44112233))
	test.That(t, isBigEndian(binary.BigEndian), test.ShouldBeTrue)
	test.That(t, isBigEndian(binary.LittleEndian), test.ShouldBeFalse)
}

func TestPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		test.That(t, isPowerOfTwo(n), test.ShouldBeTrue)
		test.That(t, nextPowerOfTwo(n), test.ShouldEqual, n)
	}
	for _, n := range []int{-4, 0, 3, 5, 100} {
		test.That(t, isPowerOfTwo(n), test.ShouldBeFalse)
	}
	test.That(t, nextPowerOfTwo(0), test.ShouldEqual, 1)
	test.That(t, nextPowerOfTwo(3), test.ShouldEqual, 4)
	test.That(t, nextPowerOfTwo(100), test.ShouldEqual, 128)
}
