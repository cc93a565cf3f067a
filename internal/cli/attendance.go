package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

const dateFlagLayout = "2006-01-02"

func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return time.Time{}, fmt.Errorf("--%s is required (format %s)", name, dateFlagLayout)
	}
	t, err := time.Parse(dateFlagLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

func parseID(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(n), nil
}

func punchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "punch in|out",
		Short: "Record today's clock-in or clock-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			if err := a.requireFeature(leavemarker.FeatureAttendanceTracking); err != nil {
				return err
			}
			var (
				rec *leavemarker.Attendance
				err error
			)
			switch args[0] {
			case "in":
				wt, _ := cmd.Flags().GetString("work-type")
				rec, err = a.client.Attendance().PunchIn(cmd.Context(), leavemarker.WorkType(strings.ToUpper(wt)))
			case "out":
				rec, err = a.client.Attendance().PunchOut(cmd.Context())
			default:
				return fmt.Errorf("expected in or out, got %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Punch failed"))
			}
			return a.emit(cmd.OutOrStdout(), rec, func(tw *tabwriter.Writer) {
				row(tw, "Date:", rec.Date.Format(dateFlagLayout))
				row(tw, "Status:", rec.Status)
				if rec.PunchInTime != nil {
					row(tw, "Punched in:", rec.PunchInTime.Format(time.Kitchen))
				}
				if rec.PunchOutTime != nil {
					row(tw, "Punched out:", rec.PunchOutTime.Format(time.Kitchen))
				}
			})
		},
	}
	cmd.Flags().String("work-type", "OFFICE", "OFFICE, REMOTE or FIELD_WORK")
	return cmd
}

func attendanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Attendance records and corrections",
	}
	cmd.AddCommand(
		attendanceTodayCmd(a),
		attendanceListCmd(a),
		attendanceRateCmd(a),
		attendanceCorrectionsCmd(a),
	)
	return cmd
}

func attendanceTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's punch record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			rec, err := a.client.Attendance().Today(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "No attendance record for today"))
			}
			return a.emit(cmd.OutOrStdout(), rec, func(tw *tabwriter.Writer) {
				printAttendanceRows(tw, []leavemarker.Attendance{*rec})
			})
		},
	}
}

func attendanceListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your attendance, optionally within a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			var (
				recs []leavemarker.Attendance
				err  error
			)
			if s, _ := cmd.Flags().GetString("start"); s != "" {
				start, perr := parseDateFlag(cmd, "start")
				if perr != nil {
					return perr
				}
				end, perr := parseDateFlag(cmd, "end")
				if perr != nil {
					return perr
				}
				recs, err = a.client.Attendance().MyAttendanceRange(cmd.Context(), start, end)
			} else {
				recs, err = a.client.Attendance().MyAttendance(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load attendance"))
			}
			return a.emit(cmd.OutOrStdout(), recs, func(tw *tabwriter.Writer) {
				printAttendanceRows(tw, recs)
			})
		},
	}
	cmd.Flags().String("start", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Range end (YYYY-MM-DD)")
	return cmd
}

func printAttendanceRows(tw *tabwriter.Writer, recs []leavemarker.Attendance) {
	row(tw, "DATE", "STATUS", "IN", "OUT", "WORK TYPE")
	for _, r := range recs {
		in, out, wt := "-", "-", "-"
		if r.PunchInTime != nil {
			in = r.PunchInTime.Format("15:04")
		}
		if r.PunchOutTime != nil {
			out = r.PunchOutTime.Format("15:04")
		}
		if r.WorkType != nil {
			wt = string(*r.WorkType)
		}
		row(tw, r.Date.Format(dateFlagLayout), r.Status, in, out, wt)
	}
}

func attendanceRateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show your attendance rate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			if err := a.requireFeature(leavemarker.FeatureAttendanceRateAnalytics); err != nil {
				return err
			}
			year, _ := cmd.Flags().GetInt("year")
			month, _ := cmd.Flags().GetInt("month")
			rate, err := a.client.Attendance().MyAttendanceRate(cmd.Context(), year, month)
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load attendance rate"))
			}
			return a.emit(cmd.OutOrStdout(), rate, func(tw *tabwriter.Writer) {
				row(tw, "Present days:", rate.PresentDays)
				row(tw, "Working days:", rate.TotalWorkingDays)
				row(tw, "Rate:", fmt.Sprintf("%.1f%%", rate.AttendanceRate))
			})
		},
	}
	cmd.Flags().Int("year", 0, "Year (defaults to current)")
	cmd.Flags().Int("month", 0, "Month 1-12 (defaults to current)")
	return cmd
}

func attendanceCorrectionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrections",
		Short: "Review pending attendance corrections",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "pending",
			Short: "List corrections awaiting review",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.restore(cmd); err != nil {
					return err
				}
				recs, err := a.client.Attendance().PendingCorrections(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load corrections"))
				}
				return a.emit(cmd.OutOrStdout(), recs, func(tw *tabwriter.Writer) {
					row(tw, "ID", "EMPLOYEE", "DATE", "REMARKS")
					for _, r := range recs {
						remarks := "-"
						if r.Remarks != nil {
							remarks = *r.Remarks
						}
						row(tw, r.ID, r.EmployeeName, r.Date.Format(dateFlagLayout), remarks)
					}
				})
			},
		},
		&cobra.Command{
			Use:   "approve <id>",
			Short: "Approve a correction request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.restore(cmd); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.Attendance().ApproveCorrection(cmd.Context(), id); err != nil {
					return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Approval failed"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Correction approved")
				return nil
			},
		},
		&cobra.Command{
			Use:   "reject <id>",
			Short: "Reject a correction request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.restore(cmd); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.client.Attendance().RejectCorrection(cmd.Context(), id); err != nil {
					return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Rejection failed"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Correction rejected")
				return nil
			},
		},
	)
	return cmd
}
