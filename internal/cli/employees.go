package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

func employeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage the employee directory",
	}
	cmd.AddCommand(
		employeesListCmd(a),
		employeesAddCmd(a),
		employeesDeactivateCmd(a),
		employeesReactivateCmd(a),
	)
	return cmd
}

func employeesListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			var (
				emps []leavemarker.Employee
				err  error
			)
			if activeOnly, _ := cmd.Flags().GetBool("active"); activeOnly {
				emps, err = a.client.Employees().ListActive(cmd.Context())
			} else {
				emps, err = a.client.Employees().List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load employees"))
			}
			return a.emit(cmd.OutOrStdout(), emps, func(tw *tabwriter.Writer) {
				row(tw, "ID", "EMP ID", "NAME", "EMAIL", "ROLE", "STATUS")
				for _, e := range emps {
					row(tw, e.ID, e.EmployeeID, e.FullName, e.Email, e.Role, e.Status)
				}
			})
		},
	}
	cmd.Flags().Bool("active", false, "Only active employees")
	return cmd
}

func employeesAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			req := leavemarker.EmployeeRequest{}
			req.EmployeeID, _ = cmd.Flags().GetString("employee-id")
			req.FullName, _ = cmd.Flags().GetString("name")
			req.Email, _ = cmd.Flags().GetString("email")
			req.Password, _ = cmd.Flags().GetString("password")
			req.Department, _ = cmd.Flags().GetString("department")
			req.JobTitle, _ = cmd.Flags().GetString("job-title")
			req.WorkLocation, _ = cmd.Flags().GetString("work-location")
			roleStr, _ := cmd.Flags().GetString("role")
			req.Role = leavemarker.Role(strings.ToUpper(roleStr))
			if managerID, _ := cmd.Flags().GetUint("manager"); managerID != 0 {
				req.ManagerID = &managerID
			}
			emp, err := a.client.Employees().Create(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to add employee"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Employee %d created (%s)\n", emp.ID, emp.FullName)
			return nil
		},
	}
	cmd.Flags().String("employee-id", "", "Employee ID, e.g. EMP-042")
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Initial password")
	cmd.Flags().String("role", "EMPLOYEE", "EMPLOYEE, MANAGER, HR_ADMIN or SUPER_ADMIN")
	cmd.Flags().String("department", "", "Department")
	cmd.Flags().String("job-title", "", "Job title")
	cmd.Flags().String("work-location", "", "Work location state code")
	cmd.Flags().Uint("manager", 0, "Manager's employee record ID")
	for _, f := range []string{"employee-id", "name", "email", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func employeesDeactivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.Employees().Deactivate(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Deactivation failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Employee %d deactivated\n", id)
			return nil
		},
	}
}

func employeesReactivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate <id>",
		Short: "Reactivate a deactivated employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			emp, err := a.client.Employees().Reactivate(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Reactivation failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Employee %d reactivated (%s)\n", emp.ID, emp.Status)
			return nil
		},
	}
}
