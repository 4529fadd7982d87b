// SPDX-License-Identifier: EPL-2.0

// Command gensounds generates the Clarity Layer UI feedback sounds.
//
// It synthesizes the 11-effect palette and writes one mono 16-bit
// 44100 Hz WAV file per effect into assets/sounds/. Run it from the
// repository root of the host application; it takes no arguments.
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/clarity-layer/assetgen"
)

func main() {
	outDir := filepath.Join("assets", "sounds")

	fmt.Printf("Generating sounds in: %s\n\n", outDir)

	paths, err := assetgen.GenerateSounds(outDir)
	if err != nil {
		log.Fatalf("sound generation failed: %v", err)
	}

	for _, p := range paths {
		fmt.Printf("Created: %s\n", p)
	}
	fmt.Println()
	fmt.Println("All sounds generated successfully!")
	fmt.Printf("Files are in: %s\n", outDir)
}
