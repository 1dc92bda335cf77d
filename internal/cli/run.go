package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/internal/report"
	"github.com/samandr77/microservices/settlement/internal/service"
	"github.com/samandr77/microservices/settlement/pkg/config"
	"github.com/samandr77/microservices/settlement/pkg/logger"
)

type runOutput struct {
	service.Report
	Totals []service.Total `json:"totals,omitempty"`
	Error  *runError       `json:"error,omitempty"`
}

type runError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one settlement pass and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(opts.envPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			l, err := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logger.Level, cfg.Logger.Format)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			s, closeFn := newService(cfg, l)
			defer closeFn()

			r, runErr := s.Run(cmd.Context())

			if jsonOutput {
				out := runOutput{Report: r}

				if runErr != nil {
					out.Error = &runError{Kind: entity.Kind(runErr), Message: runErr.Error()}
				} else {
					out.Totals = r.Totals()
				}

				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal report: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else if runErr != nil {
				fmt.Fprint(cmd.ErrOrStderr(), report.RenderError(r, runErr))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), report.Render(r))
			}

			if runErr != nil {
				return reportedError{err: runErr}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the report as JSON")

	return cmd
}
