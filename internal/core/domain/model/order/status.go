package order

import (
	"fmt"

	"cherry/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
//
// Lifecycle stages:
//
//	pending -> reviewed -> shipped -> completed
//
// The arrow shows the usual flow only. No transition graph is enforced:
// ChangeStatus accepts any valid value after any other, and two staff
// members updating concurrently are last-write-wins.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every submitted order,
	// waiting for staff review.
	Pending

	// Reviewed indicates staff have checked and approved the order.
	Reviewed

	// Shipped indicates the parcel has been handed to the carrier.
	Shipped

	// Completed indicates the carrier reported the parcel as signed for.
	Completed
)

// getStatusStrings returns the wire representation of every status,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Reviewed:  "reviewed",
		Shipped:   "shipped",
		Completed: "completed",
	}
}

// getValidStatusStrings returns only the four statuses accepted on the API
// and in the database.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Reviewed:  "reviewed",
		Shipped:   "shipped",
		Completed: "completed",
	}
}

// getStatusDisplayTexts returns the customer-facing Chinese label for each
// valid status. Values outside the set map to "未知" via DisplayText.
func getStatusDisplayTexts() map[Status]string {
	//nolint:exhaustive // Unknown falls through to the DisplayText default
	return map[Status]string{
		Pending:   "待审核",
		Reviewed:  "已审核",
		Shipped:   "已发货",
		Completed: "已完成",
	}
}

// ParseStatus converts a wire string into a Status.
// Returns a ValueIsInvalidError for anything outside the four valid values.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks that the Status is one of the four valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation ("pending", "reviewed", "shipped",
// "completed"), or "unknown" for invalid values. This is also the value
// stored in the status column.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DisplayText returns the localized human-readable label for the status.
// Unknown or invalid values yield "未知" rather than an error.
func (s Status) DisplayText() string {
	if text, ok := getStatusDisplayTexts()[s]; ok {
		return text
	}
	return "未知"
}
