package installer

import "kitinstall/internal/model"

type Report struct {
	RunID   string
	Results []model.InstallResult
}

func (r *Report) Installed() []string {
	return r.paths(model.OutcomeInstalled)
}

func (r *Report) Skipped() []string {
	return r.paths(model.OutcomeSkipped)
}

func (r *Report) Failed() []string {
	return r.paths(model.OutcomeFailed)
}

func (r *Report) paths(status model.Outcome) []string {
	var out []string
	for _, res := range r.Results {
		if res.Status == status {
			out = append(out, res.Entry.Local)
		}
	}

	return out
}
