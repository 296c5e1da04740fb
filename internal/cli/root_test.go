package cli

import (
	"testing"

	"github.com/alexanderramin/faqbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ConfigureReceivesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	app := testApp(t, nil)

	var got *config.Config
	app.Configure = func(cfg *config.Config) error {
		got = cfg
		return nil
	}

	_, err := executeCmd(t, app, "", "tree", "--threshold", "90", "--enrich=false", "--log-level", "debug")
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, 90, got.MatchThreshold)
	assert.False(t, got.LLM.Enabled)
	assert.Equal(t, "debug", got.Logging.Level)
}

func TestRootCmd_InvalidConfigAborts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	app := testApp(t, nil)
	called := false
	app.Configure = func(*config.Config) error {
		called = true
		return nil
	}

	_, err := executeCmd(t, app, "", "tree", "--threshold", "150")
	assert.ErrorContains(t, err, "match threshold must be between 0 and 100")
	assert.False(t, called)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "", "bogus")
	assert.ErrorContains(t, err, `unknown command "bogus"`)
}
