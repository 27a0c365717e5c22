// Command notionconv inspects and converts Notion block and page payloads.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
