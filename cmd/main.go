package main

import (
	"fmt"
	"os"

	"github.com/samandr77/microservices/settlement/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}

		os.Exit(1)
	}
}
