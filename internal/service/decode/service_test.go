package decode_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mdbview/mdbview/internal/service/decode"
	osfs_test "github.com/mdbview/mdbview/internal/service/osfs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeFileOpenFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fs := osfs_test.NewMockFileSystem(ctrl)

	openErr := errors.New("no such file")
	fs.EXPECT().Open("missing.db").Return(nil, openErr)

	svc := decode.NewService(newTestLogger(), fs)

	_, err := svc.DecodeFile("missing.db")
	require.Error(t, err)
	assert.ErrorIs(t, err, decode.ErrFailedToOpenFile)
}

func TestDecodeFileTooSmall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fs := osfs_test.NewMockFileSystem(ctrl)
	f := osfs_test.NewMockFile(ctrl)

	fs.EXPECT().Open("tiny.db").Return(f, nil)
	f.EXPECT().Read(gomock.Any()).Return(0, io.EOF)
	f.EXPECT().Close().Return(nil)

	svc := decode.NewService(newTestLogger(), fs)

	_, err := svc.DecodeFile("tiny.db")
	require.Error(t, err)
	assert.ErrorIs(t, err, decode.ErrFailedToDecode)
}
