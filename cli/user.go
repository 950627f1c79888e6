package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/approvalflow/domain"
	"github.com/spf13/cobra"
)

func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage users",
		Example: heredoc.Doc(`
			$ approvalflow user list
			$ approvalflow user seed --sample-request
		`),
	}

	cmd.AddCommand(
		listUsersCmd(),
		createUserCmd(),
		seedUsersCmd(),
	)

	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()

			users, err := a.services.Repository.ListUsers(ctx)
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(users)
		},
	}
}

func createUserCmd() *cobra.Command {
	var data domain.CreateUser

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Example: heredoc.Doc(`
			$ approvalflow user create --email anna@gov.dk --name "Anna Larsen" --role manager
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()

			user, err := a.services.Repository.CreateUser(ctx, data)
			if err != nil {
				return fmt.Errorf("creating user: %w", err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(user)
		},
	}

	cmd.Flags().StringVar(&data.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&data.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&data.Role, "role", domain.UserRoleEmployee, "Role (employee|manager|senior_manager|admin)")
	cmd.Flags().StringVar(&data.Department, "department", "", "Department")
	cmd.Flags().StringVar(&data.Phone, "phone", "", "Phone number")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")

	return cmd
}

func seedUsersCmd() *cobra.Command {
	var sampleRequest bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the test manager and employee, and optionally a sample request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()
			svc := a.services.Orchestrator

			seed := svc.SeedTestUsers
			if sampleRequest {
				seed = svc.SeedSampleRequest
			}
			result, err := seed(ctx)
			if err != nil {
				return fmt.Errorf("seeding: %w", err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(result)
		},
	}

	cmd.Flags().BoolVar(&sampleRequest, "sample-request", false, "Also file a sample request from the employee to the manager")
	return cmd
}
