package verdict

// Code is the numeric decision code produced by a completed walk
type Code int

const (
	CodeTwilight     Code = -1
	CodeNoDifference Code = 0
	CodeABetter      Code = 1
	CodeBBetter      Code = 2
)

func (c Code) String() string {
	switch c {
	case CodeTwilight:
		return "twilight"
	case CodeNoDifference:
		return "no difference"
	case CodeABetter:
		return "A better"
	case CodeBBetter:
		return "B better"
	default:
		return "unknown"
	}
}

// Message returns the human-readable conclusion for the code
func (c Code) Message() string {
	switch c {
	case CodeTwilight:
		return "inconclusive: the walk ended in the twilight zone"
	case CodeNoDifference:
		return "no difference between treatments A and B"
	case CodeABetter:
		return "treatment A is better"
	case CodeBBetter:
		return "treatment B is better"
	default:
		return "unknown decision"
	}
}

// Outcome is the result of one traversal. Decided=false is the "no informative
// pairs" case: the procedure never started, which is distinct from every
// numeric code.
type Outcome struct {
	Code    Code `json:"code"`
	Decided bool `json:"decided"`
}

// Decided wraps a code into a decided outcome
func Decided(c Code) Outcome {
	return Outcome{Code: c, Decided: true}
}

// Absent is the outcome of a run with no informative pairs
func Absent() Outcome {
	return Outcome{}
}

func (o Outcome) String() string {
	if !o.Decided {
		return "absent"
	}
	return o.Code.String()
}
