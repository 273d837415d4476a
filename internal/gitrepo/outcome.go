package gitrepo

type Status int

const (
	// CloneFailed means no working copy was produced.
	CloneFailed Status = iota
	// ClonedOnly means the working copy is at the branch tip, either because no commit
	// was requested or because the requested commit could not be checked out.
	ClonedOnly
	// ClonedAndPinned means the working copy is at the requested commit.
	ClonedAndPinned
)

func (s Status) String() string {
	switch s {
	case ClonedAndPinned:
		return "pinned"
	case ClonedOnly:
		return "cloned"
	default:
		return "failed"
	}
}

type Outcome struct {
	Status  Status
	Commit  string // abbreviated hash at HEAD when known, or the requested commit when pinned
	Warning string // set when a requested pin degraded to the branch tip
	Err     error  // set when Status is CloneFailed
}

func (o Outcome) Succeeded() bool {
	return o.Status != CloneFailed
}

// Degraded reports a clone whose requested commit could not be checked out.
func (o Outcome) Degraded() bool {
	return o.Status == ClonedOnly && o.Warning != ""
}
