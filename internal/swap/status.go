package swap

import (
	"slices"
	"strings"
)

// Status is the execution state reported by a provider. Providers use free
// text, so statuses are compared and stored in lower case.
type Status string

const (
	StatusNew        Status = "new"
	StatusWaiting    Status = "waiting"
	StatusConfirming Status = "confirming"
	StatusExchanging Status = "exchanging"
	StatusSending    Status = "sending"
	StatusFinished   Status = "finished"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
	StatusExpired    Status = "expired"
	StatusUnknown    Status = "unknown"
)

// terminalStatuses are the statuses after which a provider never reports
// anything new for an order.
var terminalStatuses = []Status{
	StatusFinished,
	StatusFailed,
	StatusRefunded,
	StatusExpired,
}

// NormalizeStatus trims and lower-cases a provider status.
func NormalizeStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

// TerminalStatuses returns a copy of the terminal statuses.
func TerminalStatuses() []Status {
	return slices.Clone(terminalStatuses)
}

// IsTerminal reports whether no further status change is expected.
func (s Status) IsTerminal() bool {
	return slices.Contains(terminalStatuses, NormalizeStatus(string(s)))
}

// Equal compares two statuses case-insensitively.
func (s Status) Equal(other Status) bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), strings.TrimSpace(string(other)))
}
