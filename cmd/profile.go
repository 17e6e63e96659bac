package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anixlabs/profilectl/internal/dispatch"
)

var flagSearchQuery string

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Print every loaded document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint("all", nil)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the combined profile summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint("profile", nil)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search across resume, certificates, and portfolio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("query") {
			params["query"] = flagSearchQuery
		}
		return runEndpoint("search", params)
	},
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchQuery, "query", "", "Search query")
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(searchCmd)
}
