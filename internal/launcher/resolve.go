// Package launcher resolves how to start the dashboard process and runs
// it in the foreground.
//
// Resolution walks a fixed fallback chain and takes the first candidate
// whose executable exists. There is no retry, health check, or restart
// policy: the child's fate is the run's fate.
package launcher

import (
	"os/exec"
)

// Candidate is one way of starting the dashboard runtime. Bin is the
// executable looked up on PATH; Args is the argv prefix that comes
// before the app path.
type Candidate struct {
	Name string // display name, e.g. "python3 -m streamlit"
	Bin  string
	Args []string
}

// DefaultCandidates returns the fallback chain, highest priority first:
// python3 with the streamlit module, then python, then a streamlit
// binary directly on PATH.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "python3 -m streamlit", Bin: "python3", Args: []string{"-m", "streamlit", "run"}},
		{Name: "python -m streamlit", Bin: "python", Args: []string{"-m", "streamlit", "run"}},
		{Name: "streamlit", Bin: "streamlit", Args: []string{"run"}},
	}
}

// LookPath reports where an executable lives, or an error if it is not
// present. The real implementation is exec.LookPath; tests substitute
// fixed environments.
type LookPath func(name string) (string, error)

// State tracks command resolution.
type State int

const (
	StateUnresolved State = iota
	StateResolved
	StateUnavailable
)

// Resolution is the outcome of walking the candidate chain. Path is the
// winning executable's location; both Candidate and Path are zero when
// State is StateUnavailable.
type Resolution struct {
	State     State
	Candidate Candidate
	Path      string
}

// Resolve walks candidates in priority order and takes the first whose
// executable is present. look may be nil, in which case PATH is
// consulted via exec.LookPath.
func Resolve(candidates []Candidate, look LookPath) Resolution {
	if look == nil {
		look = exec.LookPath
	}
	for _, c := range candidates {
		if path, err := look(c.Bin); err == nil {
			return Resolution{State: StateResolved, Candidate: c, Path: path}
		}
	}
	return Resolution{State: StateUnavailable}
}
