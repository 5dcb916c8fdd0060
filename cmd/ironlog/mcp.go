package main

import (
	"fmt"

	ilmcp "github.com/claude/ironlog/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve training data to MCP clients over stdio",
	Long: `mcp runs an MCP server on stdin/stdout, exposing the workout-type
catalog, exercises, session history, and home-view stats as tools and
resources. Requires a stored session (run ironlog login first).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		if !app.provider.SignedIn(cmd.Context()) {
			return fmt.Errorf("not signed in: run `ironlog login` first")
		}

		s := ilmcp.New(app.client, buildVersion, app.log)
		return server.ServeStdio(s)
	},
}
