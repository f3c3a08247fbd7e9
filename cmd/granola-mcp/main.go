package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/granola-notes-mcp/internal/cli"
	"github.com/MKhiriev/granola-notes-mcp/models"
)

// Set via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := cli.NewRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
