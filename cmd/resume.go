package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anixlabs/profilectl/internal/dispatch"
)

var flagJobDescription string

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Print the full resume document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint("resume", nil)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score the resume against a job description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := dispatch.Params{}
		if cmd.Flags().Changed("job-description") {
			params["job_description"] = flagJobDescription
		}
		return runEndpoint("match", params)
	},
}

func init() {
	matchCmd.Flags().StringVar(&flagJobDescription, "job-description", "", "Job description text to score against")
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(matchCmd)
}
