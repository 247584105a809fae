package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/czmate/internal/errors"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	CommitEmoji  = Accent.Sprint("📝")
)

// Messages resolves localized texts. A nil Messages falls back to English.
type Messages interface {
	GetMessage(messageID string, count int, templateData interface{}) string
}

// SmartSpinner shows progress while git runs.
type SmartSpinner struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSmartSpinner creates a spinner writing to w. It stays silent when w is
// not a terminal.
func NewSmartSpinner(w io.Writer, message string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(w),
	)
	return &SmartSpinner{spinner: s, out: w}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(s.out, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(s.out, msg)
}

// WithSpinner runs fn behind a spinner and reports success with done.
func WithSpinner(w io.Writer, message, done string, fn func() error) error {
	s := NewSmartSpinner(w, message)
	s.Start()

	if err := fn(); err != nil {
		s.Stop()
		return err
	}

	s.Success(done)
	return nil
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(w, "\n%s\n%s %s\n%s\n\n", separator, CommitEmoji, Accent.Sprint(title), separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// PrintCommitMessage shows a composed message, header highlighted.
func PrintCommitMessage(w io.Writer, title, message string) {
	PrintSectionBanner(w, title)
	header, rest, _ := strings.Cut(message, "\n")
	_, _ = fmt.Fprintln(w, Success.Sprint(header))
	if rest != "" {
		_, _ = fmt.Fprintln(w, rest)
	}
	_, _ = fmt.Fprintln(w)
}

// HandleAppError prints err in a friendly way. msgs may be nil.
func HandleAppError(w io.Writer, err error, msgs Messages) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "❌ %s: %s\n", appErr.Type, appErr.Message)

	if details := detailsOf(appErr); details != "" {
		label := "Details"
		if msgs != nil {
			label = msgs.GetMessage("ui.details", 0, nil)
		}
		_, _ = Dim.Fprintf(w, "   %s: %s\n", label, details)
	}

	if appErr.Suggestion != "" {
		tryPrefix := "💡 Try: "
		if msgs != nil {
			tryPrefix = msgs.GetMessage("ui.try_suggestion", 0, nil)
		}
		_, _ = fmt.Fprintln(w)
		_, _ = Info.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}

// detailsOf describes the wrapped error, skipping it when it only repeats
// the message already printed.
func detailsOf(appErr *domainErrors.AppError) string {
	if appErr.Err == nil {
		return ""
	}
	var inner *domainErrors.AppError
	if errors.As(appErr.Err, &inner) && inner.Message == appErr.Message {
		return ""
	}
	details := appErr.Err.Error()
	if stderr, ok := appErr.Context["stderr"].(string); ok && stderr != "" {
		details += " - " + stderr
	}
	return details
}
