package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// UniformSize is the size of the Uniforms block in the sprite shader:
// a 4x4 transform followed by an RGBA tint.
const UniformSize = 80

// Errors returned by Renderer.Draw.
var (
	ErrRendererDestroyed = errors.New("sprite: renderer destroyed")
	ErrMissingResource   = errors.New("sprite: missing target, view or sampler")
	ErrEmptyTarget       = errors.New("sprite: target has zero size")
)

// Renderer draws one textured sprite per call into a render target. It owns
// the pipeline and the vertex and uniform buffers; bind groups are built per
// draw from the view and sampler a texture unit holds.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	shader         hal.ShaderModule
	bindLayout     hal.BindGroupLayout
	pipelineLayout hal.PipelineLayout
	pipeline       hal.RenderPipeline

	vertices hal.Buffer
	uniforms hal.Buffer
}

// NewRenderer compiles the sprite shader and builds a pipeline that renders
// into targets of the given format.
func NewRenderer(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Renderer, error) {
	r := &Renderer{device: device, queue: queue}
	if err := r.init(format); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init(format gputypes.TextureFormat) error {
	var err error
	r.shader, err = NewShaderModule(r.device)
	if err != nil {
		return err
	}

	r.bindLayout, err = r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sprite: create bind group layout: %w", err)
	}

	r.pipelineLayout, err = r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("sprite: create pipeline layout: %w", err)
	}

	blend := gputypes.BlendStatePremultiplied()
	r.pipeline, err = r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "sprite_pipeline",
		Layout: r.pipelineLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: VertexEntryPoint,
			Buffers: []gputypes.VertexBufferLayout{{
				ArrayStride: VertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				},
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{{
				Format:    format,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("sprite: create render pipeline: %w", err)
	}

	r.vertices, err = r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_vertices",
		Size:  uint64(len(Indices)) * VertexStride,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("sprite: create vertex buffer: %w", err)
	}

	r.uniforms, err = r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_uniforms",
		Size:  UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("sprite: create uniform buffer: %w", err)
	}
	return nil
}

// Draw clears target and draws s, centered, one texel per target pixel,
// sampling view through sampler. It waits for the GPU before returning.
func (r *Renderer) Draw(target hal.TextureView, width, height uint32, s Sized, view hal.TextureView, sampler hal.Sampler) error {
	if r.pipeline == nil {
		return ErrRendererDestroyed
	}
	if target == nil || view == nil || sampler == nil {
		return ErrMissingResource
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyTarget, width, height)
	}

	tri := TriangleList(Quad(s))
	if err := r.queue.WriteBuffer(r.vertices, 0, Bytes(tri[:])); err != nil {
		return fmt.Errorf("sprite: write vertices: %w", err)
	}
	if err := r.queue.WriteBuffer(r.uniforms, 0, Uniforms(width, height, [4]float32{1, 1, 1, 1})); err != nil {
		return fmt.Errorf("sprite: write uniforms: %w", err)
	}

	group, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sprite_bind_group",
		Layout: r.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: r.uniforms.NativeHandle(), Offset: 0, Size: UniformSize}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("sprite: create bind group: %w", err)
	}
	defer r.device.DestroyBindGroup(group)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "sprite_encoder"})
	if err != nil {
		return fmt.Errorf("sprite: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_draw"); err != nil {
		return fmt.Errorf("sprite: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "sprite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	rp.SetPipeline(r.pipeline)
	rp.SetBindGroup(0, group, nil)
	rp.SetVertexBuffer(0, r.vertices, 0)
	rp.Draw(uint32(len(tri)), 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("sprite: end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if _, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("sprite: submit: %w", err)
	}
	// The bind group and command buffer are released on return.
	if err := r.device.WaitIdle(); err != nil {
		return fmt.Errorf("sprite: wait: %w", err)
	}
	return nil
}

// Destroy releases the pipeline and buffers. Safe to call multiple times.
func (r *Renderer) Destroy() {
	if r.uniforms != nil {
		r.device.DestroyBuffer(r.uniforms)
		r.uniforms = nil
	}
	if r.vertices != nil {
		r.device.DestroyBuffer(r.vertices)
		r.vertices = nil
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipelineLayout != nil {
		r.device.DestroyPipelineLayout(r.pipelineLayout)
		r.pipelineLayout = nil
	}
	if r.bindLayout != nil {
		r.device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// Uniforms encodes the shader's Uniforms block for a width x height target:
// a column-major orthographic transform mapping sprite units to pixels,
// then tint.
func Uniforms(width, height uint32, tint [4]float32) []byte {
	sx := 2 / float32(width)
	sy := 2 / float32(height)
	m := [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	buf := make([]byte, 0, UniformSize)
	for _, f := range m {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range tint {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
