package models

import "github.com/shopspring/decimal"

// AttendanceRecord is one employee's clock-in/out for a day (HRS0101).
type AttendanceRecord struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clockIn"`
	ClockOut     *string `json:"clockOut"`
	WorkingHours *string `json:"workingHours"`
	Status       string  `json:"status"`
	Note         string  `json:"note,omitempty"`
}

// AttendanceException is a late/early-leave/absence request (HRS0102).
type AttendanceException struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	Position      string `json:"position"`
	Date          string `json:"date"`
	ExceptionType string `json:"exceptionType"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	Approver      string `json:"approver,omitempty"`
	RequestDate   string `json:"requestDate"`
	ApprovedDate  string `json:"approvedDate,omitempty"`
}

// LeaveRequest is a leave application by the signed-in employee (HRS0201).
type LeaveRequest struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Type         string  `json:"type"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Days         float64 `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	Approver     string  `json:"approver,omitempty"`
	RequestDate  string  `json:"requestDate"`
	ApprovedDate string  `json:"approvedDate,omitempty"`
}

// LeaveApproval is a leave request awaiting a manager decision (HRS0202).
type LeaveApproval struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employeeId"`
	Name            string `json:"name"`
	Department      string `json:"department"`
	Position        string `json:"position"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Reason          string `json:"reason"`
	AppliedDate     string `json:"appliedDate"`
	ApprovedDate    string `json:"approvedDate,omitempty"`
	RejectedDate    string `json:"rejectedDate,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// LeaveAllocation is one employee's yearly leave entitlement (HRS0203).
type LeaveAllocation struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	JoinDate       string  `json:"joinDate"`
	ServiceYears   int     `json:"serviceYears"`
	BaseAllocation float64 `json:"baseAllocation"`
	AdditionalDays float64 `json:"additionalDays"`
	UsedDays       float64 `json:"usedDays"`
	RemainingDays  float64 `json:"remainingDays"`
}

// SalaryItem configures one pay or deduction line (HRS0301). Amount and
// Rate are optional; rates are percentages.
type SalaryItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Rate        *decimal.Decimal `json:"rate"`
	Taxable     bool             `json:"taxable"`
	Description string           `json:"description"`
	IsActive    bool             `json:"isActive"`
}

// SalaryRegistration is one employee's pay for a month (HRS0302).
type SalaryRegistration struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	PayMonth   string          `json:"payMonth"`
	Basic      decimal.Decimal `json:"basic"`
	Overtime   decimal.Decimal `json:"overtime"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	NetPay     decimal.Decimal `json:"netPay"`
	Status     string          `json:"status"`
}

// PayLine is one row of a payslip.
type PayLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Payslip is a monthly pay statement (HRS0303). Totals are derived from the
// lines whenever the record is written.
type Payslip struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	Name           string          `json:"name"`
	Department     string          `json:"department"`
	Position       string          `json:"position"`
	JoinDate       string          `json:"joinDate"`
	PayMonth       string          `json:"payMonth"`
	BankAccount    string          `json:"bankAccount"`
	PaymentDate    string          `json:"paymentDate"`
	Income         []PayLine       `json:"income"`
	Deductions     []PayLine       `json:"deductions"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	NetPay         decimal.Decimal `json:"netPay"`
}

// Employee is a row of the staff directory (HRS0401).
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// HRInfo holds contract and placement details of a profile.
type HRInfo struct {
	EmployeeNumber string `json:"employeeNumber"`
	EmployeeType   string `json:"employeeType"`
	ContractPeriod string `json:"contractPeriod"`
	WorkHours      string `json:"workHours"`
	Division       string `json:"division"`
	Team           string `json:"team"`
	ReportTo       string `json:"reportTo"`
	Location       string `json:"location"`
	Extension      string `json:"extension"`
}

// PaymentInfo holds the bank account and salary base of a profile.
type PaymentInfo struct {
	BankName        string          `json:"bankName"`
	AccountNumber   string          `json:"accountNumber"`
	AccountHolder   string          `json:"accountHolder"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	LastPaymentDate string          `json:"lastPaymentDate"`
}

type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Major  string `json:"major"`
	Period string `json:"period"`
}

type Career struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	AcquiredDate string `json:"acquiredDate"`
}

type Benefits struct {
	Insurance          []string `json:"insurance"`
	AdditionalBenefits []string `json:"additionalBenefits"`
	StockOptions       string   `json:"stockOptions,omitempty"`
}

// EmployeeProfile is the detailed personnel card (HRS0402).
type EmployeeProfile struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Department       string          `json:"department"`
	Position         string          `json:"position"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	JoinDate         string          `json:"joinDate"`
	Status           string          `json:"status"`
	Address          string          `json:"address,omitempty"`
	BirthDate        string          `json:"birthDate,omitempty"`
	EmergencyContact string          `json:"emergencyContact,omitempty"`
	HRInfo           HRInfo          `json:"hrInfo"`
	PaymentInfo      PaymentInfo     `json:"paymentInfo"`
	Education        []Education     `json:"education"`
	Career           []Career        `json:"career"`
	Certifications   []Certification `json:"certifications"`
	Benefits         Benefits        `json:"benefits"`
}
