package leavemarker

// Role is a user's role within their company.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleHRAdmin    Role = "HR_ADMIN"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
)

// Tier is a subscription tier label.
type Tier string

const (
	TierFree       Tier = "FREE"
	TierPro        Tier = "PRO"
	TierEnterprise Tier = "ENTERPRISE"
)

// LeaveType identifies a category of leave.
type LeaveType string

const (
	LeaveTypeCasual          LeaveType = "CASUAL_LEAVE"
	LeaveTypeSick            LeaveType = "SICK_LEAVE"
	LeaveTypeEarned          LeaveType = "EARNED_LEAVE"
	LeaveTypeLossOfPay       LeaveType = "LOSS_OF_PAY"
	LeaveTypeCompOff         LeaveType = "COMP_OFF"
	LeaveTypeOptionalHoliday LeaveType = "OPTIONAL_HOLIDAY"
)

// LeaveStatus is the lifecycle state of a leave application.
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

// EmployeeStatus marks an employee record as active or deactivated.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// EmploymentType distinguishes full-time staff from contractors.
type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "FULL_TIME"
	EmploymentTypeContract EmploymentType = "CONTRACT"
)

// AttendanceStatus is the resolved status of one attendance day.
type AttendanceStatus string

const (
	AttendanceStatusPresent      AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent       AttendanceStatus = "ABSENT"
	AttendanceStatusHalfDay      AttendanceStatus = "HALF_DAY"
	AttendanceStatusOnLeave      AttendanceStatus = "ON_LEAVE"
	AttendanceStatusWeeklyOff    AttendanceStatus = "WEEKLY_OFF"
	AttendanceStatusHoliday      AttendanceStatus = "HOLIDAY"
	AttendanceStatusWorkFromHome AttendanceStatus = "WORK_FROM_HOME"
)

// WorkType records where a punch-in happened.
type WorkType string

const (
	WorkTypeOffice     WorkType = "OFFICE"
	WorkTypeRemote     WorkType = "REMOTE"
	WorkTypeHybrid     WorkType = "HYBRID"
	WorkTypeFieldWork  WorkType = "FIELD_WORK"
	WorkTypeClientSite WorkType = "CLIENT_SITE"
)

// HolidayType scopes a holiday to the nation, a state, or one company.
type HolidayType string

const (
	HolidayTypeNational HolidayType = "NATIONAL"
	HolidayTypeState    HolidayType = "STATE"
	HolidayTypeCompany  HolidayType = "COMPANY"
)

// BillingCycle is the subscription billing interval.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "MONTHLY"
	BillingCycleYearly  BillingCycle = "YEARLY"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusTrial     SubscriptionStatus = "TRIAL"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ReportType selects which report a download targets.
type ReportType string

const (
	ReportLeaveBalance ReportType = "leave-balance"
	ReportAttendance   ReportType = "attendance"
	ReportLeaveUsage   ReportType = "leave-usage"
)

// ReportFormat selects the download encoding.
type ReportFormat string

const (
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatCSV   ReportFormat = "csv"
)

// Feature names a subscription feature flag checked by page-level gates.
type Feature string

const (
	FeatureAttendanceTracking      Feature = "attendanceTracking"
	FeatureAdvancedReports         Feature = "advancedReports"
	FeatureAttendanceRateAnalytics Feature = "attendanceRateAnalytics"
	FeatureCustomLeaveTypes        Feature = "customLeaveTypes"
	FeatureAPIAccess               Feature = "apiAccess"
	FeaturePrioritySupport         Feature = "prioritySupport"
)
