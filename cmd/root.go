package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anixlabs/profilectl/internal/certs"
	"github.com/anixlabs/profilectl/internal/dispatch"
	"github.com/anixlabs/profilectl/internal/docstore"
	"github.com/anixlabs/profilectl/internal/logging"
	"github.com/anixlabs/profilectl/internal/portfolio"
	"github.com/anixlabs/profilectl/internal/profile"
	"github.com/anixlabs/profilectl/internal/resume"
)

var (
	flagResumePath       string
	flagCertificatesPath string
	flagPortfolioPath    string
	flagLogPath          string
)

var rootCmd = &cobra.Command{
	Use:          "profilectl",
	Short:        "profilectl — query a YAML resume, certificate archive, and project portfolio",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `profilectl loads three static YAML documents (resume, certificates, project
portfolio) and serves lookup, search, and aggregation endpoints over them.
Every command prints a uniform JSON envelope to stdout.`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagResumePath, "resume-path", "resume.yaml", "Path to the resume YAML document")
	pf.StringVar(&flagCertificatesPath, "certificates-path", "certificates.yaml", "Path to the certificates YAML document")
	pf.StringVar(&flagPortfolioPath, "portfolio-path", "portfolio.yaml", "Path to the portfolio YAML document")
	pf.StringVar(&flagLogPath, "log-path", "", "Append log file (default ~/.profilectl/actions.log)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newDispatcher loads the three documents and assembles the accessor stack.
// The returned func flushes the log and should be deferred.
func newDispatcher() (*dispatch.Dispatcher, func(), error) {
	logPath := flagLogPath
	if logPath == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		logPath = p
	}
	log, closeLog, err := logging.New(logPath)
	if err != nil {
		return nil, nil, err
	}

	resumePath, err := docstore.ExpandPath(flagResumePath)
	if err != nil {
		return nil, nil, err
	}
	certsPath, err := docstore.ExpandPath(flagCertificatesPath)
	if err != nil {
		return nil, nil, err
	}
	portfolioPath, err := docstore.ExpandPath(flagPortfolioPath)
	if err != nil {
		return nil, nil, err
	}

	r := resume.New(docstore.LoadResume(resumePath, log), log)
	c := certs.New(docstore.Load(certsPath, log), log)
	p := portfolio.New(docstore.Load(portfolioPath, log), log)
	svc := profile.New(r, c, p, log)
	return dispatch.New(svc, log), closeLog, nil
}

// runEndpoint dispatches one endpoint call and prints the envelope. Error
// envelopes are data, not process failures: the exit code stays zero.
func runEndpoint(endpoint string, params dispatch.Params) error {
	d, closeLog, err := newDispatcher()
	if err != nil {
		return err
	}
	defer closeLog()
	return printEnvelope(d.Handle(endpoint, params))
}
