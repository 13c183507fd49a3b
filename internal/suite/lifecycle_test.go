package suite_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferbench/internal/suite"
	"transferbench/internal/testutils"
)

func TestPerform_Success(t *testing.T) {
	test := &testutils.StubTest{RunDelay: 5 * time.Millisecond}

	elapsed, err := suite.Perform(test)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
	assert.Equal(t, 1, test.SetUpCalls)
	assert.Equal(t, 1, test.RunCalls)
	assert.Equal(t, 1, test.TearDownCalls)
}

func TestPerform_SetUpFailure(t *testing.T) {
	setUpErr := errors.New("cannot create fixture file")
	test := &testutils.StubTest{SetUpErr: setUpErr}

	elapsed, err := suite.Perform(test)

	require.ErrorIs(t, err, setUpErr)
	assert.Equal(t, time.Duration(0), elapsed)
	assert.Equal(t, 0, test.RunCalls, "run must not execute after a failed set-up")
	assert.Equal(t, 1, test.TearDownCalls, "tear-down runs even when set-up fails")
}

func TestPerform_RunFailure(t *testing.T) {
	runErr := &suite.TransferFailure{Reason: "connection reset"}
	test := &testutils.StubTest{RunErr: runErr}

	elapsed, err := suite.Perform(test)

	require.ErrorIs(t, err, runErr)
	assert.Equal(t, time.Duration(0), elapsed)
	assert.Equal(t, 1, test.TearDownCalls)
}

func TestPerform_TearDownFailureIsSwallowed(t *testing.T) {
	test := &testutils.StubTest{TearDownErr: errors.New("stale data object")}

	elapsed, err := suite.Perform(test)

	require.NoError(t, err, "tear-down failures must never escape Perform")
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Equal(t, 1, test.TearDownCalls)
}

func TestPerform_TearDownFailureDoesNotMaskRunFailure(t *testing.T) {
	runErr := &suite.TransferFailure{Reason: "upload rejected"}
	test := &testutils.StubTest{
		RunErr:      runErr,
		TearDownErr: errors.New("cleanup also broke"),
	}

	_, err := suite.Perform(test)

	require.ErrorIs(t, err, runErr)
}

func TestTransferFailure_Error(t *testing.T) {
	assert.Equal(t, "transfer failed", (&suite.TransferFailure{}).Error())
	assert.Equal(t, "timeout", (&suite.TransferFailure{Reason: "timeout"}).Error())
}
