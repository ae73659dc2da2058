package intcode

// Interrupt is an event that returns control to the caller.
type Interrupt struct {
	NeedInput bool
	Output    bool
	Halt      bool
	Value     int64
}

var (
	InterruptNeedInput = &Interrupt{
		NeedInput: true,
	}
	InterruptHalt = &Interrupt{
		Halt: true,
	}
)
