package main

import (
	"fmt"
	"os"
	"rotx/internal/rotate"
	"strconv"
)

func main() {
	if len(os.Args) <= 2 {
		fmt.Println("Usage: decode <rotation> <string>")
		return
	}

	n, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Println("Rotation must be a whole number.")
		return
	}

	// The rotation is the one the string was encoded with.
	fmt.Println(rotate.Decode(os.Args[2], -n))
}
