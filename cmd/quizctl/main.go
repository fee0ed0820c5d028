package main

import (
	"fmt"
	"os"

	"quiz-mcq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quizctl:", err)
		os.Exit(1)
	}
}
