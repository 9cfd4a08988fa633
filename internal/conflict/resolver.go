package conflict

import (
	"fmt"

	"kitinstall/internal/logger"
	"kitinstall/internal/model"

	"go.uber.org/zap"
)

// Session carries the per-run overwrite state. Force is fixed at startup;
// OverwriteAll and SkipAll become sticky once the user picks them.
type Session struct {
	Force        bool
	OverwriteAll bool
	SkipAll      bool
}

type Prompter interface {
	Ask(path string) (model.Answer, error)
}

type Resolver struct {
	prompter Prompter
}

func NewResolver(prompter Prompter) *Resolver {
	return &Resolver{prompter: prompter}
}

// Resolve decides what to do with an existing target file.
func (r *Resolver) Resolve(session *Session, path string) (model.Decision, error) {
	switch {
	case session.Force:
		logger.Log.Debug("force overwrite", zap.String("path", path))
		return model.DecisionOverwrite, nil
	case session.OverwriteAll:
		return model.DecisionOverwrite, nil
	case session.SkipAll:
		return model.DecisionSkip, nil
	}

	answer, err := r.prompter.Ask(path)
	if err != nil {
		return model.DecisionSkip, fmt.Errorf("failed to read answer for %s: %w", path, err)
	}

	logger.Log.Debug("overwrite answer",
		zap.String("path", path),
		zap.String("answer", string(answer)))

	switch answer {
	case model.AnswerYes:
		return model.DecisionOverwrite, nil
	case model.AnswerAll:
		session.OverwriteAll = true
		return model.DecisionOverwrite, nil
	case model.AnswerSkipAll:
		session.SkipAll = true
		return model.DecisionSkip, nil
	case model.AnswerNo:
		return model.DecisionSkip, nil
	default:
		return model.DecisionSkip, fmt.Errorf("unknown answer: %s", answer)
	}
}
