// Command chakractl runs the chakra engine offline against a profile given
// on the command line or in a YAML/JSON file.
//
// Usage:
//
//	chakractl status --values root=3,sacral=6,heart=8
//	chakractl recommend --file profile.yaml -o json
//	chakractl context --values root=3 --emotion anxious --emotion tired
//	chakractl reference heart -o yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
