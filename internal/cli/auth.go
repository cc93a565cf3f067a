package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

func loginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if err := a.session.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Login failed. Please try again."))
			}
			ident := a.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", ident.FullName, ident.Role)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.session.VerifySession(cmd.Context())
			a.session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func signupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a company and its first admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := leavemarker.SignupRequest{}
			req.CompanyName, _ = cmd.Flags().GetString("company")
			req.CompanyEmail, _ = cmd.Flags().GetString("company-email")
			req.FullName, _ = cmd.Flags().GetString("name")
			req.Email, _ = cmd.Flags().GetString("email")
			req.Password, _ = cmd.Flags().GetString("password")
			req.EmployeeID, _ = cmd.Flags().GetString("employee-id")
			req.WorkLocation, _ = cmd.Flags().GetString("work-location")
			if err := a.session.Signup(cmd.Context(), req); err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Signup failed. Please try again."))
			}
			ident := a.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "Company registered, logged in as %s (%s)\n", ident.FullName, ident.Role)
			return nil
		},
	}
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("company-email", "", "Company email")
	cmd.Flags().String("name", "", "Admin full name")
	cmd.Flags().String("email", "", "Admin email")
	cmd.Flags().String("password", "", "Admin password")
	cmd.Flags().String("employee-id", "", "Admin employee ID")
	cmd.Flags().String("work-location", "", "Work location state code")
	for _, f := range []string{"company", "company-email", "name", "email", "password", "employee-id"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity and plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			ident := a.session.Identity()
			snap := a.entitlements.Snapshot()
			out := struct {
				Identity    *leavemarker.Identity    `json:"identity"`
				Entitlement *leavemarker.Entitlement `json:"entitlement"`
			}{ident, snap}
			return a.emit(cmd.OutOrStdout(), out, func(tw *tabwriter.Writer) {
				row(tw, "Name:", ident.FullName)
				row(tw, "Email:", ident.Email)
				row(tw, "Role:", ident.Role)
				row(tw, "Company ID:", ident.CompanyID)
				if snap != nil {
					row(tw, "Plan:", fmt.Sprintf("%s (%s)", snap.PlanName, snap.Tier))
					row(tw, "Employee slots:", fmt.Sprintf("%d/%d", snap.CurrentEmployees, snap.MaxEmployees))
				}
			})
		},
	}
}

func menuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the dashboard sections visible to your role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			items := leavemarker.FilterNavigation(leavemarker.DefaultNavigation, a.session.Identity())
			return a.emit(cmd.OutOrStdout(), items, func(tw *tabwriter.Writer) {
				row(tw, "SECTION", "PATH")
				for _, it := range items {
					row(tw, it.Name, it.Path)
				}
			})
		},
	}
}
