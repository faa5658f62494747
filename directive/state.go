package directive

// scanState is the state of an argument scanner.
type scanState int

//go:generate go tool stringer -linecomment -type=scanState
const (
	stateIdle       = scanState(0) // idle
	stateArg1First  = scanState(1) // arg1-first
	stateArg1       = scanState(2) // arg1
	stateArg1Finish = scanState(3) // arg1-finish
	stateArg2       = scanState(4) // arg2
	stateFinish     = scanState(5) // finish
)
