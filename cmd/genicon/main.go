// SPDX-License-Identifier: EPL-2.0

// Command genicon generates the Clarity Layer application icon.
//
// It renders the icon at 16, 32, 48 and 256 pixels, packs the four
// resolutions into assets/icons/clarity.ico and writes the largest as
// assets/icons/clarity_256.png. Run it from the repository root of
// the host application; it takes no arguments.
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/clarity-layer/assetgen"
	"github.com/clarity-layer/assetgen/icon"
)

func main() {
	outDir := filepath.Join("assets", "icons")

	fmt.Printf("Generating icon in: %s\n\n", outDir)
	for _, size := range icon.BundleSizes {
		fmt.Printf("Rendering %dx%d icon\n", size, size)
	}

	paths, err := assetgen.GenerateIcons(outDir)
	if err != nil {
		log.Fatalf("icon generation failed: %v", err)
	}

	fmt.Println()
	for _, p := range paths {
		fmt.Printf("Created: %s\n", p)
	}
	fmt.Println()
	fmt.Println("Icon generation complete!")
}
