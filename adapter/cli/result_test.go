package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/workflow"
)

func TestRenderFailureFoldsBusinessErrors(t *testing.T) {
	err := fmt.Errorf("%w: quota 120 for section 2 is outside [0, 100]", sharedApplication.ErrValidation)

	out := renderFailure(err)

	var result sharedApplication.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "outside [0, 100]")
}

func TestRenderFailureFoldsIllegalTransitions(t *testing.T) {
	err := fmt.Errorf("submit scheme: %w", workflow.ErrIllegalTransition)

	var result sharedApplication.Result
	require.NoError(t, json.Unmarshal([]byte(renderFailure(err)), &result))
	assert.False(t, result.Success)
}

func TestRenderFailurePassesInfrastructureErrorsThrough(t *testing.T) {
	err := errors.New("dial tcp 127.0.0.1:5432: connection refused")

	out := renderFailure(err)

	assert.Equal(t, err.Error(), out)
	assert.False(t, json.Valid([]byte(out)))
}
