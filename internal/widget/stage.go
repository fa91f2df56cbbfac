package widget

// Stage is a step of one booking attempt.
type Stage int

const (
	Idle Stage = iota
	Validating
	CheckingAvailability
	Submitting
	Success
	DemoFallback
	Rejected
)

var stageNames = [...]string{"idle", "validating", "checking_availability", "submitting", "success", "demo_fallback", "rejected"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Terminal reports whether the attempt is over.
func (s Stage) Terminal() bool {
	return s == Success || s == DemoFallback || s == Rejected
}

// Busy reports whether the form should show its loading indicator.
func (s Stage) Busy() bool {
	return s == CheckingAvailability || s == Submitting
}
