package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = merge, W2xxx = pricing, W3xxx = validation.
type WarningCode string

const (
	WarnCompanyWithoutProfile WarningCode = "W1001" // company list symbol with no stock profile (dropped from merge)
	WarnProfileWithoutCompany WarningCode = "W1002" // stock profile symbol with no company row (dropped from merge)
	WarnDuplicateSymbol       WarningCode = "W1003" // second company row with an already merged symbol (dropped)
	WarnEmptyRange            WarningCode = "W2001" // date range selected no price points
	WarnUnknownTicker         WarningCode = "W3001" // symbol outside the tracked ticker universe
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
