package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	fmt.Println("usage: mainpkg") // printing is allowed in package main
	log.Fatal("allowed in main")
	os.Exit(0)
}

func init() {
	panic("panic forbidden even in init") // want "panic is forbidden"
	log.Fatal("forbidden in init")        // want "log.Fatal is forbidden outside main function"
	os.Exit(1)                            // want "os.Exit is forbidden outside main function"
}

type runner struct{}

func (runner) main() {
	os.Exit(2) // want "os.Exit is forbidden outside main function"
}
