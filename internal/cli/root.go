package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	envPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "settlement",
		Short:         "Settle pending invoices against issued credit notes",
		Long:          "settlement fetches pending invoices, deducts credit notes per referenced invoice and pays the remaining amounts in each organization's currency.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envPath, "env", ".env", "path to the .env file")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("settlement %s (%s)\n", version, commit)
		},
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// reportedError is an error the command already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already written to the user.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
