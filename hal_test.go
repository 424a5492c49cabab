package texture_test

import (
	"errors"
	"testing"

	"github.com/gogpu/texture"
	"github.com/gogpu/texture/backend/native"
	"github.com/gogpu/wgpu/hal"
)

// rejectingQueue fails every texture upload.
type rejectingQueue struct {
	hal.Queue
}

var errQueueUpload = errors.New("queue upload failed")

func (rejectingQueue) WriteTexture(*hal.ImageCopyTexture, []byte, *hal.ImageDataLayout, *hal.Extent3D) error {
	return errQueueUpload
}

func TestCreateUseDelete_NoopDevice(t *testing.T) {
	dev, err := native.NewNoopAdapter()
	if err != nil {
		t.Fatalf("NewNoopAdapter: %v", err)
	}
	defer dev.Destroy()

	data := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	tex, err := texture.Create(dev, "rg", data, 2, 1, texture.WithoutRegistration())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tex.HalfWidth() != 1 || tex.HalfHeight() != 0.5 {
		t.Errorf("half = (%v, %v), want (1, 0.5)", tex.HalfWidth(), tex.HalfHeight())
	}

	tex.Use(1)
	if dev.ActiveUnit() != 1 {
		t.Errorf("ActiveUnit = %d, want 1", dev.ActiveUnit())
	}
	if _, _, ok := dev.Binding(1); !ok {
		t.Error("unit 1 not bound after Use")
	}

	tex.Delete()
	if _, _, ok := dev.Binding(1); ok {
		t.Error("unit 1 still bound after Delete")
	}
	if s := dev.Stats(); s.Textures != 0 || s.Samplers != 0 {
		t.Errorf("device still holds %+v after Delete", s)
	}
}

func TestCreate_NoopDeviceSamplingModes(t *testing.T) {
	dev, err := native.NewNoopAdapter()
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Destroy()

	modes := []texture.WrapMode{texture.WrapClampToEdge, texture.WrapRepeat, texture.WrapMirroredRepeat}
	for _, wrap := range modes {
		tex, err := texture.Create(dev, "w", make([]byte, 4), 1, 1,
			texture.WithoutRegistration(), texture.WithWrap(wrap), texture.WithMagFilter(texture.FilterNearest))
		if err != nil {
			t.Errorf("Create with %v: %v", wrap, err)
			continue
		}
		tex.Delete()
	}
}

func TestCreate_QueueUploadFailure(t *testing.T) {
	host, err := native.NewNoopAdapter()
	if err != nil {
		t.Fatal(err)
	}
	defer host.Destroy()

	dev := native.NewHALAdapter(host.Device(), rejectingQueue{Queue: host.Queue()})
	defer dev.Destroy()
	reg := texture.NewRegistry()

	tex, err := texture.Create(dev, "p", make([]byte, 4), 1, 1, texture.WithRegistry(reg))
	if !errors.Is(err, errQueueUpload) {
		t.Fatalf("Create error = %v, want upload failure", err)
	}
	if tex != nil {
		t.Errorf("Create returned %v alongside an error", tex)
	}
	if s := dev.Stats(); s.Textures != 0 || s.Samplers != 0 {
		t.Errorf("device holds %+v after failed upload, want nothing", s)
	}
	if reg.Len() != 0 {
		t.Errorf("registry holds %v after failed upload", reg.Names())
	}
}
