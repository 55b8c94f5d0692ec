package writer

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/storages/directory"
	"github.com/pighand/codebuilder/internal/storages/memory"
)

type prompterMock struct {
	mock.Mock
}

func (m *prompterMock) Ask(ctx context.Context, filePath string) (Decision, error) {
	args := m.Called(ctx, filePath)
	return args.Get(0).(Decision), args.Error(1)
}

func newTestWriter(t *testing.T, prompter Prompter, dryRun bool) (*Writer, string, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	st, err := directory.NewStorage(root)
	require.NoError(t, err)
	out := new(bytes.Buffer)
	return NewWriter(st, prompter, out, dryRun), root, out
}

func preCreate(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte("old"), 0o600))
	}
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	return string(data)
}

func TestWriter_NewFile(t *testing.T) {
	p := new(prompterMock)
	w, root, out := newTestWriter(t, p, false)
	state := NewState(ModeAsk)

	res, err := w.Write(context.Background(), state, "model/UserModel.js", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, res)
	assert.Equal(t, "new", readFile(t, root, "model/UserModel.js"))
	assert.Contains(t, out.String(), filepath.Join(root, "model", "UserModel.js"))
	assert.Equal(t, 1, state.Written())
	p.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestWriter_ReplaceAll(t *testing.T) {
	p := new(prompterMock)
	w, root, _ := newTestWriter(t, p, false)
	preCreate(t, root, "a.txt", "b.txt")
	p.On("Ask", mock.Anything, filepath.Join(root, "a.txt")).Return(DecisionReplaceAll, nil).Once()

	state := NewState(ModeAsk)
	for _, f := range []string{"a.txt", "b.txt"} {
		res, err := w.Write(context.Background(), state, f, []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeWritten, res)
	}
	assert.Equal(t, "new", readFile(t, root, "a.txt"))
	assert.Equal(t, "new", readFile(t, root, "b.txt"))
	assert.Equal(t, ModeReplaceAll, state.Mode())
	p.AssertNumberOfCalls(t, "Ask", 1)
}

func TestWriter_SkipAllStopsWriting(t *testing.T) {
	p := new(prompterMock)
	w, root, _ := newTestWriter(t, p, false)
	preCreate(t, root, "a.txt", "b.txt")
	p.On("Ask", mock.Anything, mock.Anything).Return(DecisionSkipAll, nil).Once()

	state := NewState(ModeAsk)
	for _, f := range []string{"a.txt", "b.txt", "c.txt"} {
		res, err := w.Write(context.Background(), state, f, []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeSkipped, res)
	}
	assert.Equal(t, "old", readFile(t, root, "a.txt"))
	assert.Equal(t, "old", readFile(t, root, "b.txt"))
	assert.NoFileExists(t, filepath.Join(root, "c.txt"))
	assert.True(t, state.Stopped())
	assert.Equal(t, 3, state.Skipped())
	p.AssertNumberOfCalls(t, "Ask", 1)
}

func TestWriter_SingleAnswers(t *testing.T) {
	p := new(prompterMock)
	w, root, _ := newTestWriter(t, p, false)
	preCreate(t, root, "a.txt", "b.txt")
	p.On("Ask", mock.Anything, filepath.Join(root, "a.txt")).Return(DecisionSkip, nil).Once()
	p.On("Ask", mock.Anything, filepath.Join(root, "b.txt")).Return(DecisionReplace, nil).Once()

	state := NewState(ModeAsk)
	res, err := w.Write(context.Background(), state, "a.txt", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, res)
	res, err = w.Write(context.Background(), state, "b.txt", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, res)

	assert.Equal(t, "old", readFile(t, root, "a.txt"))
	assert.Equal(t, "new", readFile(t, root, "b.txt"))
	assert.Equal(t, ModeAsk, state.Mode())
	p.AssertExpectations(t)
}

func TestWriter_PresetModes(t *testing.T) {
	t.Run("skip existing", func(t *testing.T) {
		p := new(prompterMock)
		w, root, _ := newTestWriter(t, p, false)
		preCreate(t, root, "a.txt")
		state := NewState(ModeSkipExisting)

		res, err := w.Write(context.Background(), state, "a.txt", []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeSkipped, res)
		res, err = w.Write(context.Background(), state, "b.txt", []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeWritten, res)
		assert.Equal(t, "old", readFile(t, root, "a.txt"))
		p.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
	})

	t.Run("replace all", func(t *testing.T) {
		p := new(prompterMock)
		w, root, _ := newTestWriter(t, p, false)
		preCreate(t, root, "a.txt")

		res, err := w.Write(context.Background(), NewState(ModeReplaceAll), "a.txt", []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, OutcomeWritten, res)
		assert.Equal(t, "new", readFile(t, root, "a.txt"))
		p.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
	})
}

func TestWriter_DryRun(t *testing.T) {
	p := new(prompterMock)
	w, root, out := newTestWriter(t, p, true)
	preCreate(t, root, "a.txt")
	state := NewState(ModeAsk)

	res, err := w.Write(context.Background(), state, "a.txt", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDryRun, res)
	res, err = w.Write(context.Background(), state, "dir/b.txt", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDryRun, res)

	assert.Equal(t, "old", readFile(t, root, "a.txt"))
	assert.NoDirExists(t, filepath.Join(root, "dir"))
	assert.Contains(t, out.String(), "replace")
	assert.Contains(t, out.String(), "create")
	p.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestWriter_Errors(t *testing.T) {
	t.Run("prompt failure", func(t *testing.T) {
		p := new(prompterMock)
		w, root, _ := newTestWriter(t, p, false)
		preCreate(t, root, "a.txt")
		p.On("Ask", mock.Anything, mock.Anything).Return(Decision(""), ErrNoAnswer)

		_, err := w.Write(context.Background(), NewState(ModeAsk), "a.txt", []byte("new"))
		require.ErrorIs(t, err, ErrNoAnswer)
	})

	t.Run("parent is a file", func(t *testing.T) {
		w, root, _ := newTestWriter(t, new(prompterMock), false)
		preCreate(t, root, "model")

		_, err := w.Write(context.Background(), NewState(ModeAsk), "model/UserModel.js", []byte("new"))
		require.ErrorIs(t, err, models.ErrFileSystem)
	})
}

func TestWriter_Sub(t *testing.T) {
	st := memory.NewStorage("/project")
	require.NoError(t, st.PutObject(context.Background(), "service/impl/UserServiceImpl.java", bytes.NewReader([]byte("old"))))

	p := new(prompterMock)
	p.On("Ask", mock.Anything, "/project/service/impl/UserServiceImpl.java").Return(DecisionSkip, nil).Once()
	w := NewWriter(st, p, new(bytes.Buffer), false)
	state := NewState(ModeAsk)

	res, err := w.Sub("service/impl").Write(context.Background(), state, "UserServiceImpl.java", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, res)

	res, err = w.Sub("domain").Write(context.Background(), state, "UserDomain.java", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, res)

	stat, err := st.Stat("domain/UserDomain.java")
	require.NoError(t, err)
	assert.True(t, stat.Exist)
	assert.Equal(t, "old", readObject(t, st, "service/impl/UserServiceImpl.java"))
	p.AssertExpectations(t)
}

func TestWriter_TargetIsDirectory(t *testing.T) {
	st := memory.NewStorage("/project")
	require.NoError(t, st.PutObject(context.Background(), "model/UserModel.js/keep", bytes.NewReader(nil)))

	p := new(prompterMock)
	w := NewWriter(st, p, new(bytes.Buffer), false)
	_, err := w.Write(context.Background(), NewState(ModeAsk), "model/UserModel.js", []byte("new"))
	require.ErrorIs(t, err, models.ErrFileSystem)
	p.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestWriter_DryRunUnchanged(t *testing.T) {
	p := new(prompterMock)
	w, root, out := newTestWriter(t, p, true)
	preCreate(t, root, "a.txt")

	res, err := w.Write(context.Background(), NewState(ModeAsk), "a.txt", []byte("old"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDryRun, res)
	assert.Contains(t, out.String(), "unchanged "+filepath.Join(root, "a.txt"))
	p.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func readObject(t *testing.T, st *memory.Storage, name string) string {
	t.Helper()
	r, err := st.GetObject(context.Background(), name)
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
