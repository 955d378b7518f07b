//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "overlaydemo requires Windows: it hosts a WGL window and overlay")
	os.Exit(1)
}
