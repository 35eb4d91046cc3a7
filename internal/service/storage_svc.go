package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"decor_dev_v1_202609/pkg/logger"
)

// MaxUploadFiles 单次请求最多接收的文件数，超出直接拒绝
const MaxUploadFiles = 6

// ==================== 配置 ====================

type StorageConfig struct {
	BaseDir      string // 落盘目录
	PublicPrefix string // 对外暴露的相对路径前缀，如 /uploads
}

// ==================== StorageService 本地媒体存储 ====================

// StorageService 负责上传文件的落盘与命名
// 存储名 = 纳秒时间戳 + 清洗后的原始文件名，避免碰撞
type StorageService struct {
	cfg    *StorageConfig
	client *resty.Client
}

// NewStorageService 创建存储服务，确保目录存在
func NewStorageService(cfg *StorageConfig) (*StorageService, error) {
	if cfg.PublicPrefix == "" {
		cfg.PublicPrefix = "/uploads"
	}
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	// 远程拉取 AR 模型用；失败直接上抛，不做重试
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &StorageService{cfg: cfg, client: client}, nil
}

// ==================== 上传入库 ====================

// Ingest 接收 multipart 文件，按上传顺序返回公开相对路径
// 空输入返回空列表；超过 MaxUploadFiles 返回 ErrTooManyFiles
func (s *StorageService) Ingest(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		storedName := s.storedName(fh.Filename)
		if err := s.saveMultipart(fh, storedName); err != nil {
			logger.L().Error("上传文件落盘失败",
				zap.String("filename", fh.Filename), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
		}
		paths = append(paths, s.publicPath(storedName))
	}
	return paths, nil
}

// IngestFromURL 拉取远程资源并像普通上传一样落盘，返回公开相对路径
func (s *StorageService) IngestFromURL(ctx context.Context, rawURL string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("拉取远程资源失败: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("拉取远程资源失败: HTTP %d", resp.StatusCode())
	}

	name := "model.glb"
	if u, uerr := url.Parse(rawURL); uerr == nil && path.Base(u.Path) != "/" && path.Base(u.Path) != "." {
		name = path.Base(u.Path)
		if path.Ext(name) == "" {
			name += ".glb"
		}
	}
	storedName := s.storedName(name)
	if err := os.WriteFile(filepath.Join(s.cfg.BaseDir, storedName), resp.Body(), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return s.publicPath(storedName), nil
}

// Remove 按公开相对路径删除文件，目标不存在不算错误
func (s *StorageService) Remove(publicPath string) error {
	name := path.Base(publicPath)
	err := os.Remove(filepath.Join(s.cfg.BaseDir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ==================== 清理任务支撑 ====================

// StoredFile 落盘文件条目
type StoredFile struct {
	Name       string
	PublicPath string
	ModTime    time.Time
}

// Entries 列出上传目录下的全部文件
func (s *StorageService) Entries() ([]StoredFile, error) {
	dirEntries, err := os.ReadDir(s.cfg.BaseDir)
	if err != nil {
		return nil, err
	}

	files := make([]StoredFile, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, StoredFile{
			Name:       e.Name(),
			PublicPath: s.publicPath(e.Name()),
			ModTime:    info.ModTime(),
		})
	}
	return files, nil
}

// ==================== 内部工具 ====================

// 文件名只保留字母数字与 . - _
var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename 清洗原始文件名
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeNameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "file"
	}
	return name
}

func (s *StorageService) storedName(original string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), SanitizeFilename(original))
}

func (s *StorageService) publicPath(storedName string) string {
	return s.cfg.PublicPrefix + "/" + storedName
}

func (s *StorageService) saveMultipart(fh *multipart.FileHeader, storedName string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.cfg.BaseDir, storedName))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// ==================== 错误定义 ====================

var (
	ErrTooManyFiles = errors.New("单次最多上传 6 个文件")
	ErrStorageWrite = errors.New("文件写入失败")
)
