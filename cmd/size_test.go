package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pine-marten/cppstat/internal/controller"
	controllermocks "github.com/pine-marten/cppstat/internal/controller/mocks"
	"github.com/pine-marten/cppstat/internal/domain"
	domainmocks "github.com/pine-marten/cppstat/internal/domain/mocks"
	m "github.com/pine-marten/cppstat/internal/model"
)

func TestSizeCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSizeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	originalNewUI := newUI
	newUI = func(*cobra.Command) controller.UI { return mockUI }
	defer func() { newUI = originalNewUI }()

	report := m.SizeReport{ExcludedDir: "test"}
	mockWorkflow.On("SizeReport", mock.MatchedBy(func(args domain.SizeArgs) bool {
		return args.Root == "." && args.ExcludeDir == "test" && len(args.Exclude) == 0
	})).Return(report, nil)
	mockUI.On("ShowSizeReport", report).Return(nil)

	cmd.SetArgs([]string{"size"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestSizeCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSizeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	originalNewUI := newUI
	newUI = func(*cobra.Command) controller.UI { return mockUI }
	defer func() { newUI = originalNewUI }()

	mockWorkflow.On("SizeReport", mock.MatchedBy(func(args domain.SizeArgs) bool {
		return args.Root == "src" &&
			args.ExcludeDir == "vendor" &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "gen_" &&
			args.Exclude[1] == "legacy"
	})).Return(m.SizeReport{ExcludedDir: "vendor"}, nil)
	mockUI.On("ShowSizeReport", mock.Anything).Return(nil)

	cmd.SetArgs([]string{"size", "-r", "src", "--exclude-dir", "vendor", "-x", "gen_", "-x", "legacy"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestSizeCmd_WorkflowErrorPropagates(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSizeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("SizeReport", mock.Anything).Return(m.SizeReport{}, &domain.RootError{Root: "nope"})

	cmd.SetArgs([]string{"size", "-r", "nope"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestSizeCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeCmdTestFile(t, filepath.Join(root, "src", "main.cpp"), "a\nb\nc\n")
	writeCmdTestFile(t, filepath.Join(root, "test", "t.cpp"), "x\n")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.AddCommand(newSizeCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"size", "-r", root})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, filepath.Join("src", "main.cpp")+" — 3 lines")
	assert.Contains(t, output, "Total lines (excluding test/): 3")
}

func TestNewSizeCmd(t *testing.T) {
	cmd := newSizeCmd()

	assert.Equal(t, "size", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	rootFlag := cmd.Flags().Lookup("root")
	require.NotNil(t, rootFlag)
	assert.Equal(t, ".", rootFlag.DefValue)

	excludeDirFlag := cmd.Flags().Lookup("exclude-dir")
	require.NotNil(t, excludeDirFlag)
	assert.Equal(t, "test", excludeDirFlag.DefValue)

	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
}

func writeCmdTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
