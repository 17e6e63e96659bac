package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anixlabs/profilectl/internal/dispatch"
)

var (
	flagCertQuery  string
	flagCertID     string
	flagCertIssuer string
)

var certificatesCmd = &cobra.Command{
	Use:   "certificates",
	Short: "Query the certificate archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint("certificates", nil)
	},
}

// certCategoryCmd builds one flagless category subcommand.
func certCategoryCmd(use, short, endpoint string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEndpoint(endpoint, nil)
		},
	}
}

var certSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search certificates by keyword",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("query") {
			params["query"] = flagCertQuery
		}
		return runEndpoint("certificates/search", params)
	},
}

var certIDCmd = &cobra.Command{
	Use:   "id",
	Short: "Look up a certificate by its ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("id") {
			params["id"] = flagCertID
		}
		return runEndpoint("certificates/id", params)
	},
}

var certIssuerCmd = &cobra.Command{
	Use:   "issuer",
	Short: "List certificates matching an issuer name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("issuer") {
			params["issuer"] = flagCertIssuer
		}
		return runEndpoint("certificates/issuer", params)
	},
}

func init() {
	certSearchCmd.Flags().StringVar(&flagCertQuery, "query", "", "Search query")
	certIDCmd.Flags().StringVar(&flagCertID, "id", "", "Certificate ID")
	certIssuerCmd.Flags().StringVar(&flagCertIssuer, "issuer", "", "Issuer name")

	certificatesCmd.AddCommand(
		certCategoryCmd("coursera", "List Coursera certificates", "certificates/coursera"),
		certCategoryCmd("diplomas", "List diplomas", "certificates/diplomas"),
		certCategoryCmd("languages", "List language certificates", "certificates/languages"),
		certCategoryCmd("badges", "List verified badges", "certificates/badges"),
		certCategoryCmd("repo", "Print certificate repository info", "certificates/repo"),
		certSearchCmd,
		certIDCmd,
		certIssuerCmd,
	)
	rootCmd.AddCommand(certificatesCmd)
}
