// SPDX-License-Identifier: EPL-2.0

// Package icon draws the Clarity Layer application icon and packs it
// into a multi-resolution ICO container.
//
// The icon is a stylized eye on a blue disc with a magnifying lens
// anchored at the bottom-right. Render produces it at any square
// pixel size; every dimension is derived from the size by integer
// arithmetic, so the composition scales without configuration:
//
//	img, err := icon.Render(256)
//
// # Packing
//
// EncodeICO packs rendered images into a single ICO file using
// PNG-compressed directory entries, the variant supported by all
// modern Windows releases:
//
//	var out bytes.Buffer
//	err := icon.EncodeICO(&out, images)
//
// BundleSizes lists the resolutions expected by the host application:
// 16 and 32 for window chrome and tray, 48 for shortcuts, 256 for
// high-DPI contexts.
package icon
