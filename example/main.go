// Example program demonstrating the releasebump library API. It reports
// which files of the current directory a tag would update, without writing.
//
// Run from the repo root:
//
//	go run ./example/ v1.2.3 package.json
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/MyCarrier-DevOps/go-releasebump/pkg/releasebump"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <tag> <file>...", os.Args[0])
	}

	result, err := releasebump.Run(context.Background(), releasebump.Options{
		Workspace: ".",
		Ref:       os.Args[1],
		Branch:    "main",
		Files:     os.Args[2:],
		DryRun:    true,
	})
	if err != nil {
		log.Fatalf("dry run failed: %v", err)
	}

	fmt.Printf("=== %s ===\n", result.Tag)
	for _, f := range result.ChangedFiles {
		fmt.Printf("would update %s\n", f)
	}

	keys := make([]string, 0, len(result.Variables))
	for k := range result.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-10s = %s\n", k, result.Variables[k])
	}
}
