// gridgeom rasterizes grid shapes and prints them as text or PNG
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
