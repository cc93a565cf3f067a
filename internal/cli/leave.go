package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

func leaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave applications and approvals",
	}
	cmd.AddCommand(
		leaveApplyCmd(a),
		leaveListCmd(a),
		leavePendingCmd(a),
		leaveApproveCmd(a),
		leaveRejectCmd(a),
		leaveCancelCmd(a),
	)
	return cmd
}

func leaveApplyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for leave",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			start, err := parseDateFlag(cmd, "start")
			if err != nil {
				return err
			}
			end, err := parseDateFlag(cmd, "end")
			if err != nil {
				return err
			}
			leaveType, _ := cmd.Flags().GetString("type")
			reason, _ := cmd.Flags().GetString("reason")
			halfDay, _ := cmd.Flags().GetBool("half-day")

			days := end.Sub(start).Hours()/24 + 1
			if halfDay {
				days = 0.5
			}
			app, err := a.client.LeaveApplications().Apply(cmd.Context(), leavemarker.LeaveApplicationRequest{
				LeaveType:    leavemarker.LeaveType(strings.ToUpper(leaveType)),
				StartDate:    start,
				EndDate:      end,
				NumberOfDays: days,
				IsHalfDay:    halfDay,
				Reason:       reason,
			})
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to submit leave application"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %d submitted (%s, %.1f days)\n", app.ID, app.Status, app.NumberOfDays)
			return nil
		},
	}
	cmd.Flags().String("type", "", "Leave type, e.g. CASUAL_LEAVE, SICK_LEAVE, EARNED_LEAVE")
	cmd.Flags().String("start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().String("reason", "", "Reason for leave")
	cmd.Flags().Bool("half-day", false, "Half-day leave")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func leaveListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your leave applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			apps, err := a.client.LeaveApplications().MyLeaves(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load leave applications"))
			}
			return a.emit(cmd.OutOrStdout(), apps, func(tw *tabwriter.Writer) {
				printLeaveRows(tw, apps)
			})
		},
	}
}

func leavePendingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List applications awaiting your approval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			var (
				apps []leavemarker.LeaveApplication
				err  error
			)
			if asHR, _ := cmd.Flags().GetBool("hr"); asHR {
				apps, err = a.client.LeaveApplications().PendingHRApprovals(cmd.Context())
			} else {
				apps, err = a.client.LeaveApplications().PendingManagerApprovals(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load pending approvals"))
			}
			return a.emit(cmd.OutOrStdout(), apps, func(tw *tabwriter.Writer) {
				printLeaveRows(tw, apps)
			})
		},
	}
	cmd.Flags().Bool("hr", false, "Show the HR approval queue instead of the manager queue")
	return cmd
}

func printLeaveRows(tw *tabwriter.Writer, apps []leavemarker.LeaveApplication) {
	row(tw, "ID", "EMPLOYEE", "TYPE", "FROM", "TO", "DAYS", "STATUS")
	for _, app := range apps {
		row(tw, app.ID, app.EmployeeName, app.LeaveType,
			app.StartDate.Format(dateFlagLayout), app.EndDate.Format(dateFlagLayout),
			fmt.Sprintf("%.1f", app.NumberOfDays), app.Status)
	}
}

func leaveApproveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a leave application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var app *leavemarker.LeaveApplication
			if asHR, _ := cmd.Flags().GetBool("hr"); asHR {
				app, err = a.client.LeaveApplications().HRApprove(cmd.Context(), id)
			} else {
				app, err = a.client.LeaveApplications().ManagerApprove(cmd.Context(), id)
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Approval failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %d is now %s\n", app.ID, app.Status)
			return nil
		},
	}
	cmd.Flags().Bool("hr", false, "Approve as HR (second step) instead of manager")
	return cmd
}

func leaveRejectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a leave application with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			reason, _ := cmd.Flags().GetString("reason")
			var app *leavemarker.LeaveApplication
			if asHR, _ := cmd.Flags().GetBool("hr"); asHR {
				app, err = a.client.LeaveApplications().HRReject(cmd.Context(), id, reason)
			} else {
				app, err = a.client.LeaveApplications().ManagerReject(cmd.Context(), id, reason)
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Rejection failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %d is now %s\n", app.ID, app.Status)
			return nil
		},
	}
	cmd.Flags().String("reason", "", "Rejection reason (required)")
	cmd.Flags().Bool("hr", false, "Reject as HR instead of manager")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func leaveCancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel one of your leave applications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.LeaveApplications().Cancel(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Cancellation failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %d cancelled\n", id)
			return nil
		},
	}
}

func balanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show your leave balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			year, _ := cmd.Flags().GetInt("year")
			balances, err := a.client.LeaveBalance().MyBalance(cmd.Context(), year)
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load leave balance"))
			}
			return a.emit(cmd.OutOrStdout(), balances, func(tw *tabwriter.Writer) {
				row(tw, "TYPE", "QUOTA", "USED", "PENDING", "AVAILABLE")
				for _, b := range balances {
					row(tw, b.LeaveType,
						fmt.Sprintf("%.1f", b.TotalQuota),
						fmt.Sprintf("%.1f", b.Used),
						fmt.Sprintf("%.1f", b.Pending),
						fmt.Sprintf("%.1f", b.Available))
				}
			})
		},
	}
	cmd.Flags().Int("year", 0, "Year (defaults to current)")
	return cmd
}
