package main

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	Execute(Version)
}
