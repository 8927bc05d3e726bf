package upload

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmptyFile(t *testing.T) {
	require.ErrorIs(t, Validate(nil), ErrEmptyFile)
	require.ErrorIs(t, Validate(&multipart.FileHeader{}), ErrEmptyFile)
}

func TestValidateExtension(t *testing.T) {
	require.NoError(t, Validate(&multipart.FileHeader{Filename: "avatar.jpg", Size: 1024}))
	require.NoError(t, Validate(&multipart.FileHeader{Filename: "AVATAR.PNG", Size: 1024}))
	require.ErrorIs(t, Validate(&multipart.FileHeader{Filename: "avatar.exe", Size: 1024}), ErrExtNotAllowed)
	require.ErrorIs(t, Validate(&multipart.FileHeader{Filename: "noext", Size: 1024}), ErrExtNotAllowed)
}

func TestValidateFileTooLarge(t *testing.T) {
	require.ErrorIs(t, Validate(&multipart.FileHeader{
		Filename: "avatar.jpg",
		Size:     100 * 1024 * 1024,
	}), ErrFileTooLarge)
}
