package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/approvalflow/jobs"
	"github.com/spf13/cobra"
)

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Manage jobs",
		Example: heredoc.Doc(`
			$ approvalflow job run health_probe
		`),
	}

	cmd.AddCommand(
		runJobCmd(),
	)

	return cmd
}

func runJobCmd() *cobra.Command {
	validArgs := make([]string, 0, len(jobs.Types))
	for _, t := range jobs.Types {
		validArgs = append(validArgs, string(t))
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fire a specific job",
		Example: heredoc.Doc(`
			$ approvalflow job run health_probe
			$ approvalflow job run pending_count
			$ approvalflow job run refresh
		`),
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()
			svc := a.services.Orchestrator

			handler := jobs.NewHandler(a.logger, svc)

			jobName := jobs.Type(args[0])
			job := handler.Func(jobName)
			if job == nil {
				return fmt.Errorf("invalid job name: %s", jobName)
			}
			jobConfig := a.config.Jobs[jobName]
			if len(a.config.Jobs) > 0 && !jobConfig.Enabled {
				a.logger.Warn(ctx, "running a job that is disabled in config", "job", string(jobName))
			}
			if err := job(ctx, jobConfig.Config); err != nil {
				return fmt.Errorf(`failed to run job "%s": %w`, jobName, err)
			}

			return nil
		},
	}

	return cmd
}
