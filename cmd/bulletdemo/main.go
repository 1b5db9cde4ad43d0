package main

import "os"

func main() {
	initTemplateFormatting()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
