package main

import (
	"log"
	"os"
)

func main() {
	err := newApp(os.Stderr).Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}
