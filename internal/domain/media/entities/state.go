package entities

import "fmt"

// RequestState is the lifecycle state of one in-flight download request
type RequestState string

// Request lifecycle states
const (
	StateAwaitingChoice RequestState = "awaiting_choice"
	StateDownloading    RequestState = "downloading"
	StateUploading      RequestState = "uploading"
	StateDone           RequestState = "done"
	StateFailed         RequestState = "failed"
)

// allowedTransitions encodes the per-request state machine:
// AwaitingChoice -> Downloading -> Uploading -> Done, with Failed reachable
// from every non-terminal working state.
var allowedTransitions = map[RequestState][]RequestState{
	StateAwaitingChoice: {StateDownloading, StateFailed},
	StateDownloading:    {StateUploading, StateFailed},
	StateUploading:      {StateDone, StateFailed},
}

// Request tracks the state of one in-flight download
type Request struct {
	DownloadRequest
	State RequestState
}

// NewRequest creates a request in the AwaitingChoice state
func NewRequest(dr DownloadRequest) *Request {
	return &Request{
		DownloadRequest: dr,
		State:           StateAwaitingChoice,
	}
}

// Transition moves the request to the next state, rejecting illegal moves
func (r *Request) Transition(next RequestState) error {
	for _, allowed := range allowedTransitions[r.State] {
		if allowed == next {
			r.State = next
			return nil
		}
	}
	return fmt.Errorf("illegal state transition %s -> %s", r.State, next)
}

// Terminal reports whether the request reached a final state
func (r *Request) Terminal() bool {
	return r.State == StateDone || r.State == StateFailed
}
