package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

func plansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "View subscription plans",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Plan listing is public; no session required.
			plans, err := a.client.Plans().ListActive(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load plans"))
			}
			return a.emit(cmd.OutOrStdout(), plans, func(tw *tabwriter.Writer) {
				row(tw, "ID", "NAME", "TIER", "MONTHLY", "YEARLY", "MAX EMPLOYEES")
				for _, p := range plans {
					row(tw, p.ID, p.Name, p.Tier, p.MonthlyPrice.StringFixed(2), p.YearlyPrice.StringFixed(2), p.MaxEmployees)
				}
			})
		},
	})
	return cmd
}

func subscriptionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "View and manage the company subscription",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the active subscription",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.restore(cmd); err != nil {
					return err
				}
				sub, err := a.client.Subscriptions().Active(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "No active subscription"))
				}
				return a.emit(cmd.OutOrStdout(), sub, func(tw *tabwriter.Writer) {
					row(tw, "Plan:", sub.PlanName)
					row(tw, "Status:", sub.Status)
					row(tw, "Billing:", sub.BillingCycle)
					row(tw, "Period ends:", sub.CurrentPeriodEnd.Format(dateFlagLayout))
					row(tw, "Auto-renew:", sub.AutoRenew)
				})
			},
		},
		&cobra.Command{
			Use:   "features",
			Short: "Show the entitlement snapshot for the current plan",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.restore(cmd); err != nil {
					return err
				}
				snap := a.entitlements.Snapshot()
				if snap == nil {
					return fmt.Errorf("entitlement snapshot unavailable")
				}
				return a.emit(cmd.OutOrStdout(), snap, func(tw *tabwriter.Writer) {
					row(tw, "Plan:", fmt.Sprintf("%s (%s)", snap.PlanName, snap.Tier))
					row(tw, "Employee slots:", fmt.Sprintf("%d/%d", snap.CurrentEmployees, snap.MaxEmployees))
					row(tw, "Leave policies:", fmt.Sprintf("%d/%d", snap.CurrentLeavePolicies, snap.MaxLeavePolicies))
					row(tw, "Attendance tracking:", snap.AttendanceTracking)
					row(tw, "Advanced reports:", snap.AdvancedReports)
					row(tw, "Attendance analytics:", snap.AttendanceRateAnalytics)
					row(tw, "Custom leave types:", snap.CustomLeaveTypes)
					row(tw, "API access:", snap.APIAccess)
					row(tw, "Priority support:", snap.PrioritySupport)
				})
			},
		},
		subscriptionCancelCmd(a),
	)
	return cmd
}

func subscriptionCancelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a subscription",
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
			if err := a.client.Subscriptions().Cancel(cmd.Context(), id, reason); err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Cancellation failed"))
			}
			a.entitlements.Refresh(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Subscription cancelled")
			return nil
		},
	}
	cmd.Flags().String("reason", "", "Cancellation reason")
	return cmd
}

func subscribeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe <plan-id>",
		Short: "Subscribe the company to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			planID, err := parseID(args[0])
			if err != nil {
				return err
			}
			cycle := leavemarker.BillingCycleMonthly
			if yearly, _ := cmd.Flags().GetBool("yearly"); yearly {
				cycle = leavemarker.BillingCycleYearly
			}
			sub, err := a.client.Subscriptions().Create(cmd.Context(), leavemarker.SubscriptionRequest{
				PlanID:       planID,
				BillingCycle: cycle,
			})
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Subscription failed"))
			}
			a.entitlements.Refresh(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Subscribed to %s (%s), status %s\n", sub.PlanName, sub.BillingCycle, sub.Status)
			if !sub.IsPaid {
				fmt.Fprintln(cmd.OutOrStdout(), "Complete the payment from the web dashboard to activate paid features")
			}
			return nil
		},
	}
	cmd.Flags().Bool("yearly", false, "Bill yearly instead of monthly")
	return cmd
}

func paymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "View payment history",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			payments, err := a.client.Payments().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load payments"))
			}
			return a.emit(cmd.OutOrStdout(), payments, func(tw *tabwriter.Writer) {
				row(tw, "ID", "PLAN", "CYCLE", "AMOUNT", "STATUS", "TRANSACTION")
				for _, p := range payments {
					row(tw, p.ID, p.PlanName, p.BillingCycle, p.TotalAmount.StringFixed(2), p.Status, p.TransactionID)
				}
			})
		},
	})
	return cmd
}

func contactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the sales team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := leavemarker.ContactRequest{}
			req.Name, _ = cmd.Flags().GetString("name")
			req.Email, _ = cmd.Flags().GetString("email")
			req.Phone, _ = cmd.Flags().GetString("phone")
			req.Message, _ = cmd.Flags().GetString("message")
			if err := a.client.Contact().Send(cmd.Context(), req); err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to send message"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Message sent")
			return nil
		},
	}
	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("email", "", "Your email")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("message", "", "Message body")
	for _, f := range []string{"name", "email", "message"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}
