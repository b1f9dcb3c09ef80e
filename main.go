package main

import "github.com/aholstenson/cors-inspector/internal/runner"

func main() {
	runner.Run()
}
