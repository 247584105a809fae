package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeValidation    ErrorType = "VALIDATION"
	TypePrompt        ErrorType = "PROMPT"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Code       string
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors sharing the same code, so variants built from a sentinel
// (with a different message or context) still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if e.Code != "" && t.Code != "" {
		return e.Code == t.Code
	}
	return e == t
}

func (e *AppError) clone() *AppError {
	return &AppError{
		Type:       e.Type,
		Code:       e.Code,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	c := e.clone()
	c.Err = err
	return c
}

// WithMessage creates a new AppError that keeps the code but replaces the message
func (e *AppError) WithMessage(msg string) *AppError {
	c := e.clone()
	c.Message = msg
	return c
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	c := e.clone()
	c.Context = ctx
	return c
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	c := e.clone()
	c.Suggestion = suggestion
	return c
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, code, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Validation errors
var (
	ErrSubjectRequired = NewAppError(TypeValidation, "SUBJECT_REQUIRED", "subject is required", nil).
				WithSuggestion("Describe the change in a short imperative sentence")

	ErrSubjectTooLong = NewAppError(TypeValidation, "SUBJECT_TOO_LONG", "subject is too long", nil).
				WithSuggestion("Shorten the subject or move details to the body")

	ErrInvalidAnswer = NewAppError(TypeValidation, "INVALID_ANSWER", "invalid answer", nil)

	ErrUnknownType = NewAppError(TypeValidation, "UNKNOWN_TYPE", "unknown commit type", nil).
			WithSuggestion("List the configured types with: czmate config show")

	ErrBreakingBodyRequired = NewAppError(TypeValidation, "BREAKING_BODY_REQUIRED", "body is required for BREAKING CHANGE", nil)
)

// SubjectTooLong reports the exact number of characters left for the subject.
func SubjectTooLong(limit, current int) *AppError {
	return ErrSubjectTooLong.
		WithMessage(fmt.Sprintf("subject length must be less than or equal to %d characters. Current length is %d characters.", limit, current)).
		WithContext("limit", limit).
		WithContext("length", current)
}

// InvalidAnswer wraps a validator failure. An empty msg falls back to a generic
// message naming the question and value.
func InvalidAnswer(question string, value interface{}, msg string) *AppError {
	if msg == "" {
		msg = fmt.Sprintf("answer '%v' to question '%s' was invalid", value, question)
	}
	return ErrInvalidAnswer.WithMessage(msg).WithContext("question", question)
}

// Prompt errors
var (
	ErrPromptCancelled = NewAppError(TypePrompt, "PROMPT_CANCELLED", "prompt was cancelled before all answers were collected", nil)

	ErrUnknownDependency = NewAppError(TypePrompt, "UNKNOWN_DEPENDENCY", "question depends on an answer that is not collected before it", nil)

	ErrNoRetry = NewAppError(TypePrompt, "NO_RETRY", "no previous commit message to retry in this repository", nil).
			WithSuggestion("Run czmate commit without --retry first")
)

// Configuration errors
var (
	ErrInvalidOptions = NewAppError(TypeConfiguration, "INVALID_OPTIONS", "invalid options", nil)

	ErrLintConfig = NewAppError(TypeConfiguration, "LINT_CONFIG", "failed to read commitlint configuration", nil).
			WithSuggestion("Check the syntax of your .commitlintrc file")

	ErrToolConfig = NewAppError(TypeConfiguration, "TOOL_CONFIG", "failed to read .czrc configuration", nil).
			WithSuggestion("Check that .czrc contains valid JSON")

	ErrUserConfig = NewAppError(TypeConfiguration, "USER_CONFIG", "failed to read user configuration", nil).
			WithSuggestion("Fix ~/.czmate/config.json or change a setting with: czmate config set <key> <value>")
)

// Git errors
var (
	ErrNoChanges = NewAppError(TypeGit, "NO_CHANGES", "No staged changes detected", nil).
			WithSuggestion("Stage your changes first with: git add <files>")

	ErrGetBranch = NewAppError(TypeGit, "GET_BRANCH", "Failed to get current branch", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrNoBranch = NewAppError(TypeGit, "NO_BRANCH", "No branch detected", nil).
			WithSuggestion("Create a branch first: git checkout -b <branch-name>")

	ErrCreateCommit = NewAppError(TypeGit, "CREATE_COMMIT", "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")
)
