// gs-ppe - Main entry point
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

func main() {
	fmt.Println("gs-ppe - Groth-Sahai proofs for pairing product equations over BLS12-381")
	fmt.Println("------------------------------------------------------------------------")
	fmt.Println("To benchmark setup/randomize/verify: go run ./cmd/ppebench")
	fmt.Println()
	fmt.Println("For more information, see the package documentation of gs and pkg/core")

	// Check if the example directory exists
	if _, err := os.Stat("examples"); err == nil {
		// Run the default example if no arguments provided
		if len(os.Args) == 1 {
			fmt.Println("\nRunning the onebyone example...")

			examplesDir, err := filepath.Abs("examples")
			if err != nil {
				fmt.Println("Error getting path to examples:", err)
				return
			}

			cmd := exec.Command("go", "run", examplesDir, "onebyone")
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				fmt.Println("Error running example:", err)
			}
		}
	}
}
