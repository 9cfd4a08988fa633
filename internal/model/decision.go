package model

type Decision string

const (
	DecisionOverwrite Decision = "OVERWRITE"
	DecisionSkip      Decision = "SKIP"
)

type Answer string

const (
	AnswerYes     Answer = "yes"
	AnswerNo      Answer = "no"
	AnswerAll     Answer = "all"
	AnswerSkipAll Answer = "skip-all"
)
