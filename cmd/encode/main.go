package main

import (
	"fmt"
	"os"
	"rotx/internal/rotate"
	"strconv"
)

func main() {
	if len(os.Args) <= 2 {
		fmt.Println("Usage: encode <rotation> <string>")
		return
	}

	n, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Println("Rotation must be a whole number.")
		return
	}

	// Ciphering shifts forward, which is what Decode does for a positive n.
	fmt.Println(rotate.Decode(os.Args[2], n))
}
