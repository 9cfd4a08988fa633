package model

type Outcome string

const (
	OutcomeInstalled Outcome = "INSTALLED"
	OutcomeSkipped   Outcome = "SKIPPED"
	OutcomeFailed    Outcome = "FAILED"
)

type InstallResult struct {
	Group  string
	Entry  FileEntry
	URL    string
	Path   string
	Status Outcome
	Err    error
}
