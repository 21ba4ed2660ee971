package forbiddencalls

import (
	"fmt"
	"log"
	"os"
)

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden")   // want "log.Fatal is forbidden outside main function"
	log.Fatalf("%s", "forbidden")    // want "log.Fatalf is forbidden outside main function"
	log.Fatalln("forbidden as well") // want "log.Fatalln is forbidden outside main function"
}

func SomeOsExitFunction() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func SomePrintFunction(id string) {
	fmt.Println("Bookmark created")            // want "fmt.Println is forbidden outside package main, use the zerolog logger"
	fmt.Printf("Bookmark %s deleted\n", id)    // want "fmt.Printf is forbidden outside package main, use the zerolog logger"
	_ = fmt.Sprintf("/bookmarks/%s", id)       // formatting without output is fine
	fmt.Fprintln(os.Stderr, "explicit writer") // writing to an explicit writer is fine
}

func MultipleCallsFunction() {
	panic("panic 1")   // want "panic is forbidden"
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
	os.Exit(0)         // want "os.Exit is forbidden outside main function"
}

// main outside package main is an ordinary function.
func main() {
	os.Exit(0) // want "os.Exit is forbidden outside main function"
}
