package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anixlabs/profilectl/internal/dispatch"
)

var (
	flagProjectID      string
	flagPortfolioQuery string
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Query the project portfolio suite",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint("portfolio", nil)
	},
}

// portfolioSubCmd builds one flagless portfolio subcommand.
func portfolioSubCmd(use, short, endpoint string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEndpoint(endpoint, nil)
		},
	}
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Look up one project by its ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("id") {
			params["id"] = flagProjectID
		}
		return runEndpoint("portfolio/project", params)
	},
}

var portfolioSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search projects by keyword, ranked by relevance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("query") {
			params["query"] = flagPortfolioQuery
		}
		return runEndpoint("portfolio/search", params)
	},
}

func init() {
	projectCmd.Flags().StringVar(&flagProjectID, "id", "", "Project ID")
	portfolioSearchCmd.Flags().StringVar(&flagPortfolioQuery, "query", "", "Search query")

	portfolioCmd.AddCommand(
		portfolioSubCmd("projects", "List all projects", "portfolio/projects"),
		projectCmd,
		portfolioSubCmd("assets", "List shared assets", "portfolio/assets"),
		portfolioSubCmd("plan", "Print the AI agent plan", "portfolio/plan"),
		portfolioSubCmd("stack", "Print the technology stack summary", "portfolio/stack"),
		portfolioSubCmd("roadmap", "Print the project roadmap", "portfolio/roadmap"),
		portfolioSearchCmd,
		portfolioSubCmd("interop", "Print the project interoperability matrix", "portfolio/interop"),
	)
	rootCmd.AddCommand(portfolioCmd)
}
