// Package sprite builds billboard geometry for textures.
//
// A sprite is a quad centered on the origin whose corners sit at
// (±HalfWidth, ±HalfHeight) of its texture, so one texel maps to one
// world unit before any transform. The package also ships the WGSL shader
// and a Renderer that draws the texture bound to a unit into a render
// target.
package sprite
