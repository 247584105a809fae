package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/czmate/internal/config"
	"github.com/thomas-vilte/czmate/internal/errors"
	"github.com/thomas-vilte/czmate/internal/i18n"
)

const (
	id      = "id-123"
	typ     = "func"
	subject = "testing123"
	body    = "A quick brown fox jumps over the dog"

	longBody = "a a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a" +
		"a a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a" +
		"a a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a aa a"
)

func defaultOptions() config.Options {
	return config.Options{
		Types:          config.DefaultTypes(),
		MaxLineWidth:   100,
		MaxHeaderWidth: 100,
	}
}

func customOptions(mutate func(o *config.Options)) config.Options {
	opts := defaultOptions()
	mutate(&opts)
	return opts
}

func newTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func question(t *testing.T, name string, opts config.Options) Question {
	t.Helper()
	q, ok := NewCatalog(opts, newTranslations(t)).Find(name)
	require.True(t, ok, "question %s not found", name)
	return q
}

func enableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCatalogOrder(t *testing.T) {
	catalog := NewCatalog(defaultOptions(), newTranslations(t))

	assert.Equal(t, []string{
		NameType, NameScope, NameSubject, NameBody, NameIsBreaking, NameBreakingBody,
		NameBreaking, NameIsIssueAffected, NameIssuesBody, NameIssues,
	}, catalog.Names())
	assert.NoError(t, catalog.CheckDependencies(NameID))
}

func TestDefaults(t *testing.T) {
	t.Run("defaultType default", func(t *testing.T) {
		assert.Nil(t, question(t, NameType, defaultOptions()).Default)
	})

	t.Run("defaultType options", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DefaultType = "fix" })

		assert.Equal(t, "fix", question(t, NameType, opts).Default)
	})

	t.Run("defaultType not among types is ignored", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DefaultType = typ })

		assert.Nil(t, question(t, NameType, opts).Default)
	})

	t.Run("defaultSubject default", func(t *testing.T) {
		assert.Nil(t, question(t, NameSubject, defaultOptions()).Default)
	})

	t.Run("defaultSubject options", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DefaultSubject = subject })

		assert.Equal(t, subject, question(t, NameSubject, opts).Default)
	})

	t.Run("defaultBody default", func(t *testing.T) {
		assert.Nil(t, question(t, NameBody, defaultOptions()).Default)
	})

	t.Run("defaultBody options", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DefaultBody = body })

		assert.Equal(t, body, question(t, NameBody, opts).Default)
	})

	t.Run("defaultScope options", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DefaultScope = "api" })

		assert.Equal(t, "api", question(t, NameScope, opts).Default)
	})

	t.Run("isBreaking defaults to false", func(t *testing.T) {
		assert.Equal(t, false, question(t, NameIsBreaking, defaultOptions()).Default)
	})

	t.Run("defaultIssues preselects the issues questions", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DefaultIssues = "fix #1" })

		assert.Equal(t, true, question(t, NameIsIssueAffected, opts).Default)
		assert.Equal(t, "fix #1", question(t, NameIssues, opts).Default)
	})

	t.Run("disableScopeLowerCase is not a question", func(t *testing.T) {
		_, ok := NewCatalog(defaultOptions(), newTranslations(t)).Find("disableScopeLowerCase")

		assert.False(t, ok)
	})
}

func TestPrompts(t *testing.T) {
	t.Run("commit subject prompt for commit", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		msg := q.Prompt(Answers{NameID: id, NameType: typ})

		assert.Contains(t, msg, fmt.Sprintf("(max %d chars)", 100-len(id)-len(typ)-5))
	})

	t.Run("subject prompt accounts for scope", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		msg := q.Prompt(Answers{NameID: id, NameType: typ, NameScope: "api"})

		assert.Contains(t, msg, "(max 80 chars)")
	})

	t.Run("type choices list every type with its description", func(t *testing.T) {
		q := question(t, NameType, defaultOptions())

		require.Len(t, q.Choices, len(config.DefaultTypes()))
		assert.Equal(t, "feat", q.Choices[0].Value)
		assert.Equal(t, "feat:     A new feature", q.Choices[0].Name)
		assert.Equal(t, "refactor: A code change that neither fixes a bug nor adds a feature", q.Choices[4].Name)
		assert.Equal(t, KindList, q.Kind)
	})
}

func TestTransformation(t *testing.T) {
	enableColor(t)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgRed)

	t.Run("subject w/ character count", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		got := q.Render(subject, Answers{NameID: id, NameType: typ, NameSubject: subject})

		assert.Equal(t, ok.Sprint(fmt.Sprintf("(%d) %s", len(subject), subject)), got)
	})

	t.Run("long subject w/ character count", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		got := q.Render(longBody, Answers{NameID: id, NameType: typ, NameSubject: longBody})

		assert.Equal(t, warn.Sprint(fmt.Sprintf("(%d) %s", len(longBody), longBody)), got)
	})

	t.Run("subject at the exact budget is ok", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())
		s := strings.Repeat("x", 85)

		got := q.Render(s, Answers{NameID: id, NameType: typ})

		assert.Equal(t, ok.Sprint("(85) "+s), got)
	})

	t.Run("count uses the filtered subject", func(t *testing.T) {
		// Arrange
		opts := customOptions(func(o *config.Options) { o.MaxHeaderWidth = 20 })
		q := question(t, NameSubject, opts)
		raw := "  Hello world.  "

		// Act
		got := q.Render(raw, Answers{NameType: "feat"})

		// Assert
		assert.Equal(t, ok.Sprint("(11) "+raw), got)
		assert.NoError(t, q.Check(raw, Answers{NameType: "feat"}))
	})

	t.Run("one over the budget is a warning", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())
		s := strings.Repeat("x", 86)

		got := q.Render(s, Answers{NameID: id, NameType: typ})

		assert.Equal(t, warn.Sprint("(86) "+s), got)
	})
}

func TestFilter(t *testing.T) {
	t.Run("lowerfirst subject trimmed and trailing dots striped", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		assert.Equal(t, "a subject", q.Apply("  A subject...  "))
	})

	t.Run("scope is lower-cased", func(t *testing.T) {
		q := question(t, NameScope, defaultOptions())

		assert.Equal(t, "api-client", q.Apply(" API-Client "))
	})

	t.Run("scope case is kept when disabled", func(t *testing.T) {
		opts := customOptions(func(o *config.Options) { o.DisableScopeLowerCase = true })
		q := question(t, NameScope, opts)

		assert.Equal(t, "API-Client", q.Apply(" API-Client "))
	})

	t.Run("body is trimmed", func(t *testing.T) {
		q := question(t, NameBody, defaultOptions())

		assert.Equal(t, body, q.Apply("\n "+body+"  "))
	})
}

func TestFilterSubject(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"   ":             "",
		"...":             "",
		"Add login":       "add login",
		"Ñandú support.":  "ñandú support",
		"fix it . .":      "fix it .",
		"Already lower":   "already lower",
		"  Trailing...  ": "trailing",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, FilterSubject(in))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("empty subject", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		err := q.Check("", Answers{NameID: id, NameType: typ})

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidAnswer)
		assert.ErrorIs(t, err, errors.ErrSubjectRequired)
		assert.Contains(t, err.Error(), "subject is required")
	})

	t.Run("subject only made of dots is empty", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		err := q.Check(" ... ", Answers{NameID: id, NameType: typ})

		assert.ErrorIs(t, err, errors.ErrSubjectRequired)
	})

	t.Run("subject exceeds max length", func(t *testing.T) {
		q := question(t, NameSubject, defaultOptions())

		err := q.Check(longBody, Answers{NameID: id, NameType: typ})

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrSubjectTooLong)
		assert.Contains(t, err.Error(), fmt.Sprintf("length must be less than or equal to %d", 100-len(typ)-len(id)-5))
	})

	t.Run("breaking body is required", func(t *testing.T) {
		q := question(t, NameBreakingBody, defaultOptions())

		assert.ErrorIs(t, q.Check("  ", Answers{NameIsBreaking: true}), errors.ErrBreakingBodyRequired)
		assert.NoError(t, q.Check("explains the change", Answers{NameIsBreaking: true}))
	})
}

func TestWhen(t *testing.T) {
	t.Run("breaking by default", func(t *testing.T) {
		assert.False(t, question(t, NameBreaking, defaultOptions()).Visible(Answers{}))
	})

	t.Run("breaking when isBreaking", func(t *testing.T) {
		assert.True(t, question(t, NameBreaking, defaultOptions()).Visible(Answers{NameIsBreaking: true}))
	})

	t.Run("breaking needs an explicit true", func(t *testing.T) {
		assert.False(t, question(t, NameBreaking, defaultOptions()).Visible(Answers{NameIsBreaking: "true"}))
	})

	t.Run("breakingBody only without body", func(t *testing.T) {
		q := question(t, NameBreakingBody, defaultOptions())

		assert.True(t, q.Visible(Answers{NameIsBreaking: true, NameBody: ""}))
		assert.False(t, q.Visible(Answers{NameIsBreaking: true, NameBody: body}))
		assert.False(t, q.Visible(Answers{NameIsBreaking: false}))
	})

	t.Run("issues when isIssueAffected", func(t *testing.T) {
		q := question(t, NameIssues, defaultOptions())

		assert.False(t, q.Visible(Answers{}))
		assert.True(t, q.Visible(Answers{NameIsIssueAffected: true}))
	})

	t.Run("issuesBody only without any body", func(t *testing.T) {
		q := question(t, NameIssuesBody, defaultOptions())

		assert.True(t, q.Visible(Answers{NameIsIssueAffected: true}))
		assert.False(t, q.Visible(Answers{NameIsIssueAffected: true, NameBreakingBody: "why"}))
		assert.False(t, q.Visible(Answers{NameIsIssueAffected: true, NameBody: body}))
	})

	t.Run("predicates cannot mutate the answers", func(t *testing.T) {
		answers := Answers{NameIsBreaking: true}
		q := Question{Name: "probe", When: func(a Answers) bool {
			a[NameIsBreaking] = false
			return true
		}}

		q.Visible(answers)

		assert.Equal(t, true, answers[NameIsBreaking])
	})
}

func TestCheckDependencies(t *testing.T) {
	t.Run("rejects a dependency on a later question", func(t *testing.T) {
		catalog := Catalog{
			{Name: "first", DependsOn: []string{"second"}},
			{Name: "second"},
		}

		err := catalog.CheckDependencies()

		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownDependency)
		assert.Contains(t, err.Error(), `"first" depends on "second"`)
	})

	t.Run("seeds are known from the start", func(t *testing.T) {
		catalog := Catalog{{Name: "subject", DependsOn: []string{NameID}}}

		assert.Error(t, catalog.CheckDependencies())
		assert.NoError(t, catalog.CheckDependencies(NameID))
	})
}
