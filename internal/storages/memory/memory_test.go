package memory

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pighand/codebuilder/internal/common/models"
)

func TestStorage_PutAndGetObject(t *testing.T) {
	ctx := context.Background()
	st := NewStorage("/base")

	require.NoError(t, st.PutObject(ctx, "a/b.txt", bytes.NewReader([]byte("hello"))))
	reader, err := st.GetObject(ctx, "a/b.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = st.GetObject(ctx, "missing.txt")
	assert.ErrorIs(t, err, models.ErrFileSystem)
}

func TestStorage_StatDirectory(t *testing.T) {
	ctx := context.Background()
	st := NewStorage("/")

	stat, err := st.Stat("model")
	require.NoError(t, err)
	assert.False(t, stat.Exist)

	require.NoError(t, st.PutObject(ctx, "model/User.js", bytes.NewReader([]byte("data"))))
	stat, err = st.Stat("model")
	require.NoError(t, err)
	assert.True(t, stat.Exist)
	assert.True(t, stat.IsDir)

	stat, err = st.Stat("model/User.js")
	require.NoError(t, err)
	assert.True(t, stat.Exist)
	assert.False(t, stat.IsDir)
}

func TestStorage_SubStorage(t *testing.T) {
	ctx := context.Background()
	st := NewStorage("/base")

	rel := st.SubStorage("sub", true)
	assert.Equal(t, "/base/sub", rel.GetCwd())
	require.NoError(t, rel.PutObject(ctx, "one.txt", bytes.NewReader([]byte("1"))))

	stat, err := st.Stat("sub/one.txt")
	require.NoError(t, err)
	assert.True(t, stat.Exist)

	abs := st.SubStorage("other", false)
	assert.Equal(t, "/other", abs.GetCwd())
}

func TestStorage_Stat(t *testing.T) {
	ctx := context.Background()
	st := NewStorage("/base")

	stat, err := st.Stat("x.txt")
	require.NoError(t, err)
	assert.False(t, stat.Exist)

	require.NoError(t, st.PutObject(ctx, "x.txt", bytes.NewReader(nil)))
	stat, err = st.Stat("x.txt")
	require.NoError(t, err)
	assert.True(t, stat.Exist)
	assert.Equal(t, "/base/x.txt", stat.Name)
	assert.False(t, stat.LastModified.IsZero())
}

func TestStorage_PutObjectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewStorage("/")
	assert.ErrorIs(t, st.PutObject(ctx, "a.txt", bytes.NewReader(nil)), context.Canceled)
}
