package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInstitutionNotFound  = errors.New("institution not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrShiftNotFound        = errors.New("shift not found")
	ErrExchangeNotFound     = errors.New("exchange not found")
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrNotAllowed        = errors.New("insufficient permissions")
	ErrNotShiftOwner     = errors.New("shift is not owned by this user")
	ErrNotExchangeTarget = errors.New("only the exchange target can respond")

	ErrInvalidShiftInput = errors.New("invalid shift input")
	ErrInvalidTransition = errors.New("invalid shift status transition")
	ErrShiftLocked       = errors.New("shift is already paid and locked")
	ErrInvalidPeriod     = errors.New("invalid period, expected YYYY-MM")

	ErrSelfExchange       = errors.New("cannot propose an exchange to yourself")
	ErrExchangeResolved   = errors.New("exchange has already been resolved")
	ErrStaleExchange      = errors.New("shift is no longer owned by the proposer")
	ErrNothingToSettle    = errors.New("no validated shifts for this period")
	ErrSettlementConflict = errors.New("shift changed during settlement")
)
