package domain

// SessionState tracks where a session is in the fetch/answer pipeline.
type SessionState string

const (
	SessionStateIdle         SessionState = "idle"
	SessionStateFetching     SessionState = "fetching"
	SessionStateReady        SessionState = "ready"
	SessionStateFetchFailed  SessionState = "fetch_failed"
	SessionStateAnswering    SessionState = "answering"
	SessionStateAnswerFailed SessionState = "answer_failed"
)

// ValidSessionStates contains every state a session can report.
var ValidSessionStates = []SessionState{
	SessionStateIdle,
	SessionStateFetching,
	SessionStateReady,
	SessionStateFetchFailed,
	SessionStateAnswering,
	SessionStateAnswerFailed,
}

// IsValid checks if a session state is one of the known states.
func (s SessionState) IsValid() bool {
	for _, v := range ValidSessionStates {
		if s == v {
			return true
		}
	}
	return false
}

// HasComments reports whether a session in this state holds a usable
// comment collection. Answer failures keep the collection around so
// the user can retry the question.
func (s SessionState) HasComments() bool {
	return s == SessionStateReady || s == SessionStateAnswering || s == SessionStateAnswerFailed
}
