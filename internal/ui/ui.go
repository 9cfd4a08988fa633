package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Out receives all console output. Tests swap it for a buffer.
var Out io.Writer = os.Stderr

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PromptColor  = color.New(color.FgMagenta)
)

func Header(format string, a ...any) {
	HeaderColor.Fprintf(Out, format+"\n", a...)
}

func Info(format string, a ...any) {
	InfoColor.Fprintf(Out, format+"\n", a...)
}

func Success(format string, a ...any) {
	SuccessColor.Fprintf(Out, format+"\n", a...)
}

func Warning(format string, a ...any) {
	WarningColor.Fprintf(Out, format+"\n", a...)
}

func Error(format string, a ...any) {
	ErrorColor.Fprintf(Out, format+"\n", a...)
}

func Prompt(format string, a ...any) string {
	return PromptColor.Sprintf(format, a...)
}

// PrintSummary reports what an install run did.
func PrintSummary(installed, skipped, failed []string) {
	Header("\n--- Install Summary ---")

	if len(installed) == 0 && len(skipped) == 0 && len(failed) == 0 {
		Info("No files were processed.")
		return
	}

	if len(installed) > 0 {
		Success("Installed %d file(s):", len(installed))
		for _, f := range installed {
			fmt.Fprintf(Out, "  - %s\n", f)
		}
	}
	if len(skipped) > 0 {
		Warning("Skipped %d existing file(s):", len(skipped))
		for _, f := range skipped {
			fmt.Fprintf(Out, "  - %s\n", f)
		}
	}
	if len(failed) > 0 {
		Error("Failed to install %d file(s):", len(failed))
		for _, f := range failed {
			fmt.Fprintf(Out, "  - %s\n", f)
		}
	}
}
