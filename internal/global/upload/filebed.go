package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"college-platform-backend/config"

	pkgerrors "github.com/pkg/errors"
)

// FileBed 文件上传工具类
// 将文件保存到本地指定目录，并返回访问路径

type FileBed struct {
	SaveDir string // 文件保存目录
	BaseURL string // 文件访问基础URL
}

// allowedExts 上传文件扩展名白名单
var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrExtNotAllowed = pkgerrors.New("不支持的文件类型")
	ErrFileTooLarge  = pkgerrors.New("文件大小超出限制")
	ErrEmptyFile     = pkgerrors.New("未选择文件")
)

// NewFileBed 创建文件床实例，subDir 为上传目录下的子目录（如 avatars）
func NewFileBed(subDir string) *FileBed {
	cfg := config.Get().Upload
	return &FileBed{
		SaveDir: filepath.Join(cfg.Dir, subDir),
		BaseURL: strings.TrimRight(cfg.BaseURL, "/") + "/" + subDir,
	}
}

// Validate 检查扩展名白名单和大小上限
func Validate(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil || fileHeader.Filename == "" {
		return ErrEmptyFile
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExts[ext] {
		return ErrExtNotAllowed
	}
	maxSize := config.Get().Upload.MaxSizeMB * 1024 * 1024
	if maxSize > 0 && fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}
	return nil
}

// Save 校验并保存文件，文件名为 {namePrefix}_{纳秒时间戳}{ext}，返回访问URL
func (fb *FileBed) Save(fileHeader *multipart.FileHeader, namePrefix string) (string, error) {
	if err := Validate(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(fb.SaveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%s_%d%s", namePrefix, time.Now().UnixNano(), ext)
	filePath := filepath.Join(fb.SaveDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return fb.BaseURL + "/" + filename, nil
}
