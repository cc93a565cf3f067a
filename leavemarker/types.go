package leavemarker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Identity is the authenticated caller. Exactly one Identity is active per
// session, or none.
type Identity struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      Role   `json:"role"`
	CompanyID uint   `json:"companyId"`
}

// SignupRequest carries company creation plus the first admin account.
type SignupRequest struct {
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmployeeID   string `json:"employeeId"`
	WorkLocation string `json:"workLocation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the credential-exchange payload for both login and signup.
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	UserID      uint   `json:"userId"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Role        Role   `json:"role"`
	CompanyID   uint   `json:"companyId"`
}

// Entitlement is the caller's current subscription-derived permissions.
// Slot counts come from the server and are treated as authoritative; the
// client never recomputes them.
type Entitlement struct {
	HasActiveSubscription bool `json:"hasActiveSubscription"`
	SubscriptionID        uint `json:"subscriptionId"`
	IsPaid                bool `json:"isPaid"`
	IsValid               bool `json:"isValid"`

	Tier     Tier   `json:"tier"`
	PlanName string `json:"planName"`

	MaxEmployees              int `json:"maxEmployees"`
	CurrentEmployees          int `json:"currentEmployees"`
	RemainingEmployeeSlots    int `json:"remainingEmployeeSlots"`
	MaxLeavePolicies          int `json:"maxLeavePolicies"`
	CurrentLeavePolicies      int `json:"currentLeavePolicies"`
	RemainingLeavePolicySlots int `json:"remainingLeavePolicySlots"`

	AttendanceTracking      bool `json:"attendanceTracking"`
	AdvancedReports         bool `json:"advancedReports"`
	AttendanceRateAnalytics bool `json:"attendanceRateAnalytics"`
	CustomLeaveTypes        bool `json:"customLeaveTypes"`
	APIAccess               bool `json:"apiAccess"`
	PrioritySupport         bool `json:"prioritySupport"`

	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd"`
}

// Flag returns the boolean value of a named feature flag.
func (e *Entitlement) Flag(f Feature) bool {
	switch f {
	case FeatureAttendanceTracking:
		return e.AttendanceTracking
	case FeatureAdvancedReports:
		return e.AdvancedReports
	case FeatureAttendanceRateAnalytics:
		return e.AttendanceRateAnalytics
	case FeatureCustomLeaveTypes:
		return e.CustomLeaveTypes
	case FeatureAPIAccess:
		return e.APIAccess
	case FeaturePrioritySupport:
		return e.PrioritySupport
	}
	return false
}

// Employee is a company employee record.
type Employee struct {
	ID             uint           `json:"id"`
	EmployeeID     string         `json:"employeeId"`
	FullName       string         `json:"fullName"`
	Email          string         `json:"email"`
	Role           Role           `json:"role"`
	Department     string         `json:"department"`
	JobTitle       string         `json:"jobTitle"`
	DateOfJoining  *time.Time     `json:"dateOfJoining"`
	EmploymentType EmploymentType `json:"employmentType"`
	WorkLocation   string         `json:"workLocation"`
	Status         EmployeeStatus `json:"status"`
	ManagerID      *uint          `json:"managerId"`
	ManagerName    string         `json:"managerName,omitempty"`
	CompanyID      uint           `json:"companyId"`
	CompanyName    string         `json:"companyName,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// EmployeeRequest creates or updates an employee. Password is only honored
// on create.
type EmployeeRequest struct {
	EmployeeID     string         `json:"employeeId"`
	FullName       string         `json:"fullName"`
	Email          string         `json:"email"`
	Password       string         `json:"password,omitempty"`
	Role           Role           `json:"role"`
	Department     string         `json:"department,omitempty"`
	JobTitle       string         `json:"jobTitle,omitempty"`
	DateOfJoining  *time.Time     `json:"dateOfJoining,omitempty"`
	EmploymentType EmploymentType `json:"employmentType,omitempty"`
	WorkLocation   string         `json:"workLocation,omitempty"`
	ManagerID      *uint          `json:"managerId,omitempty"`
}

// LeavePolicy is one leave type's accrual rules.
type LeavePolicy struct {
	ID                uint      `json:"id"`
	LeaveType         LeaveType `json:"leaveType"`
	AnnualQuota       int       `json:"annualQuota"`
	MonthlyAccrual    float64   `json:"monthlyAccrual"`
	CarryForward      bool      `json:"carryForward"`
	MaxCarryForward   int       `json:"maxCarryForward"`
	EncashmentAllowed bool      `json:"encashmentAllowed"`
	HalfDayAllowed    bool      `json:"halfDayAllowed"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LeavePolicyRequest creates or updates a leave policy.
type LeavePolicyRequest struct {
	LeaveType         LeaveType `json:"leaveType"`
	AnnualQuota       int       `json:"annualQuota"`
	MonthlyAccrual    float64   `json:"monthlyAccrual"`
	CarryForward      bool      `json:"carryForward"`
	MaxCarryForward   int       `json:"maxCarryForward"`
	EncashmentAllowed bool      `json:"encashmentAllowed"`
	HalfDayAllowed    bool      `json:"halfDayAllowed"`
	Active            bool      `json:"active"`
}

// Holiday is one calendar holiday.
type Holiday struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Date      time.Time   `json:"date"`
	Type      HolidayType `json:"type"`
	State     *string     `json:"state"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// HolidayRequest creates or updates a holiday.
type HolidayRequest struct {
	Name   string      `json:"name"`
	Date   time.Time   `json:"date"`
	Type   HolidayType `json:"type"`
	State  *string     `json:"state,omitempty"`
	Active bool        `json:"active"`
}

// LeaveApplication is one leave request and its two-step approval trail.
type LeaveApplication struct {
	ID                    uint        `json:"id"`
	EmployeeID            uint        `json:"employeeId"`
	EmployeeName          string      `json:"employeeName"`
	EmployeeEmail         string      `json:"employeeEmail"`
	LeaveType             LeaveType   `json:"leaveType"`
	StartDate             time.Time   `json:"startDate"`
	EndDate               time.Time   `json:"endDate"`
	NumberOfDays          float64     `json:"numberOfDays"`
	IsHalfDay             bool        `json:"isHalfDay"`
	Reason                string      `json:"reason"`
	AttachmentURL         *string     `json:"attachmentUrl"`
	Status                LeaveStatus `json:"status"`
	ApprovedByManagerID   *uint       `json:"approvedByManagerId"`
	ApprovedByManagerName string      `json:"approvedByManagerName,omitempty"`
	ManagerApprovalDate   *time.Time  `json:"managerApprovalDate"`
	ApprovedByHRID        *uint       `json:"approvedByHrId"`
	ApprovedByHRName      string      `json:"approvedByHrName,omitempty"`
	HRApprovalDate        *time.Time  `json:"hrApprovalDate"`
	RejectionReason       *string     `json:"rejectionReason"`
	RejectionDate         *time.Time  `json:"rejectionDate"`
	RequiresHRApproval    bool        `json:"requiresHrApproval"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// LeaveApplicationRequest files a new leave application.
type LeaveApplicationRequest struct {
	LeaveType     LeaveType `json:"leaveType"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	NumberOfDays  float64   `json:"numberOfDays"`
	IsHalfDay     bool      `json:"isHalfDay"`
	Reason        string    `json:"reason,omitempty"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty"`
}

// approvalRequest is the shared manager/HR approval payload. Reason stays
// null on approval and carries the rejection comment otherwise.
type approvalRequest struct {
	Approved bool    `json:"approved"`
	Reason   *string `json:"reason"`
}

// Attendance is one day's punch record.
type Attendance struct {
	ID                  uint             `json:"id"`
	EmployeeID          uint             `json:"employeeId"`
	EmployeeName        string           `json:"employeeName,omitempty"`
	Date                time.Time        `json:"date"`
	PunchInTime         *time.Time       `json:"punchInTime"`
	PunchOutTime        *time.Time       `json:"punchOutTime"`
	WorkType            *WorkType        `json:"workType"`
	Status              AttendanceStatus `json:"status"`
	Remarks             *string          `json:"remarks"`
	CorrectionRequested bool             `json:"correctionRequested"`
	CorrectionApproved  bool             `json:"correctionApproved"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// punchRequest is the single punch endpoint payload; IsPunchIn selects the
// direction and WorkType is null on punch-out.
type punchRequest struct {
	Date      string    `json:"date"`
	PunchTime string    `json:"punchTime"`
	IsPunchIn bool      `json:"isPunchIn"`
	WorkType  *WorkType `json:"workType"`
}

// AttendanceCorrectionRequest asks for an amendment to a recorded punch.
type AttendanceCorrectionRequest struct {
	CorrectedPunchInTime  *time.Time `json:"correctedPunchInTime"`
	CorrectedPunchOutTime *time.Time `json:"correctedPunchOutTime"`
	Reason                string     `json:"reason"`
}

// AttendanceMarkRequest lets HR record attendance on an employee's behalf.
type AttendanceMarkRequest struct {
	EmployeeID   uint             `json:"employeeId"`
	Date         time.Time        `json:"date"`
	PunchInTime  *time.Time       `json:"punchInTime,omitempty"`
	PunchOutTime *time.Time       `json:"punchOutTime,omitempty"`
	WorkType     *WorkType        `json:"workType,omitempty"`
	Status       AttendanceStatus `json:"status"`
	Remarks      *string          `json:"remarks,omitempty"`
}

// AttendanceRate is the server-computed attendance-rate analytics payload.
type AttendanceRate struct {
	TotalWorkingDays int     `json:"totalWorkingDays"`
	PresentDays      int     `json:"presentDays"`
	AbsentDays       int     `json:"absentDays"`
	LeaveDays        int     `json:"leaveDays"`
	AttendanceRate   float64 `json:"attendanceRate"`
}

// LeaveBalance is the remaining quota for one leave type in one year.
type LeaveBalance struct {
	ID             uint      `json:"id"`
	EmployeeID     uint      `json:"employeeId"`
	LeaveType      LeaveType `json:"leaveType"`
	Year           int       `json:"year"`
	TotalQuota     float64   `json:"totalQuota"`
	Used           float64   `json:"used"`
	Pending        float64   `json:"pending"`
	Available      float64   `json:"available"`
	CarriedForward float64   `json:"carriedForward"`
}

// Plan is a subscription plan with its caps and feature matrix.
type Plan struct {
	ID                      uint            `json:"id"`
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	Tier                    Tier            `json:"tier"`
	BillingCycle            BillingCycle    `json:"billingCycle"`
	MonthlyPrice            decimal.Decimal `json:"monthlyPrice"`
	YearlyPrice             decimal.Decimal `json:"yearlyPrice"`
	MinEmployees            int             `json:"minEmployees"`
	MaxEmployees            int             `json:"maxEmployees"`
	MaxLeavePolicies        int             `json:"maxLeavePolicies"`
	MaxHolidays             int             `json:"maxHolidays"`
	Active                  bool            `json:"active"`
	AttendanceManagement    bool            `json:"attendanceManagement"`
	ReportsDownload         bool            `json:"reportsDownload"`
	MultipleLeavePolicies   bool            `json:"multipleLeavePolicies"`
	UnlimitedHolidays       bool            `json:"unlimitedHolidays"`
	AttendanceRateAnalytics bool            `json:"attendanceRateAnalytics"`
	AdvancedReports         bool            `json:"advancedReports"`
	CustomLeaveTypes        bool            `json:"customLeaveTypes"`
	APIAccess               bool            `json:"apiAccess"`
	PrioritySupport         bool            `json:"prioritySupport"`
	PricePerEmployee        decimal.Decimal `json:"pricePerEmployee"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

// PlanRequest creates or updates a plan (super-admin only server-side).
type PlanRequest struct {
	Name                    string          `json:"name"`
	Description             string          `json:"description,omitempty"`
	Tier                    Tier            `json:"tier"`
	BillingCycle            BillingCycle    `json:"billingCycle,omitempty"`
	MonthlyPrice            decimal.Decimal `json:"monthlyPrice"`
	YearlyPrice             decimal.Decimal `json:"yearlyPrice"`
	MinEmployees            int             `json:"minEmployees"`
	MaxEmployees            int             `json:"maxEmployees"`
	MaxLeavePolicies        int             `json:"maxLeavePolicies"`
	MaxHolidays             int             `json:"maxHolidays"`
	Active                  bool            `json:"active"`
	AttendanceManagement    bool            `json:"attendanceManagement"`
	ReportsDownload         bool            `json:"reportsDownload"`
	MultipleLeavePolicies   bool            `json:"multipleLeavePolicies"`
	UnlimitedHolidays       bool            `json:"unlimitedHolidays"`
	AttendanceRateAnalytics bool            `json:"attendanceRateAnalytics"`
	AdvancedReports         bool            `json:"advancedReports"`
	CustomLeaveTypes        bool            `json:"customLeaveTypes"`
	APIAccess               bool            `json:"apiAccess"`
	PrioritySupport         bool            `json:"prioritySupport"`
	PricePerEmployee        decimal.Decimal `json:"pricePerEmployee,omitempty"`
}

// Subscription is a company's subscription to a plan.
type Subscription struct {
	ID                 uint               `json:"id"`
	PlanID             uint               `json:"planId"`
	PlanName           string             `json:"planName,omitempty"`
	Status             SubscriptionStatus `json:"status"`
	BillingCycle       BillingCycle       `json:"billingCycle"`
	StartDate          time.Time          `json:"startDate"`
	EndDate            time.Time          `json:"endDate"`
	CurrentPeriodStart time.Time          `json:"currentPeriodStart"`
	CurrentPeriodEnd   time.Time          `json:"currentPeriodEnd"`
	Amount             decimal.Decimal    `json:"amount"`
	AutoRenew          bool               `json:"autoRenew"`
	IsPaid             bool               `json:"isPaid"`
	CancellationReason *string            `json:"cancellationReason"`
	CancelledAt        *time.Time         `json:"cancelledAt"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// SubscriptionRequest creates or updates a subscription.
type SubscriptionRequest struct {
	PlanID       uint         `json:"planId"`
	BillingCycle BillingCycle `json:"billingCycle"`
	AutoRenew    bool         `json:"autoRenew"`
}

// Payment is one payment attempt and its provider references.
type Payment struct {
	ID                uint            `json:"id"`
	TransactionID     string          `json:"transactionId"`
	PlanID            uint            `json:"planId"`
	PlanName          string          `json:"planName,omitempty"`
	SubscriptionID    *uint           `json:"subscriptionId"`
	BillingCycle      BillingCycle    `json:"billingCycle"`
	Amount            decimal.Decimal `json:"amount"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Currency          string          `json:"currency"`
	Status            PaymentStatus   `json:"status"`
	PaymentMethod     *string         `json:"paymentMethod"`
	RazorpayOrderID   *string         `json:"razorpayOrderId"`
	RazorpayPaymentID *string         `json:"razorpayPaymentId"`
	PaidAt            *time.Time      `json:"paidAt"`
	PeriodStart       time.Time       `json:"periodStart"`
	PeriodEnd         time.Time       `json:"periodEnd"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// PaymentInitiateRequest opens a provider order for a plan purchase.
type PaymentInitiateRequest struct {
	PlanID       uint         `json:"planId"`
	BillingCycle BillingCycle `json:"billingCycle"`
}

// PaymentOrder is the provider order handle returned by initiate; the
// checkout widget consumes it.
type PaymentOrder struct {
	OrderID  string          `json:"orderId"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	KeyID    string          `json:"keyId"`
}

// PaymentVerifyRequest relays the provider callback payload for server-side
// signature verification.
type PaymentVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// countPayload is the envelope data shape of the count endpoints.
type countPayload struct {
	Count int64 `json:"count"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
