// Package scanner 提供目录遍历与有效代码行聚合能力。
// 该层负责目录遍历、文件读取、文本校验和结果聚合，不负责注释剥离细节。
package scanner

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/src-d/enry/v2"

	"solloc/internal/classifier"
	"solloc/internal/model"
)

// DefaultExtension 是未配置后缀时扫描的文件后缀。
const DefaultExtension = ".sol"

// Sink 接收扫描过程中的流式结果。
// File 在每个文件统计完成后立即调用，Total 在遍历结束后调用一次。
type Sink interface {
	File(item model.FileCount) error
	Total(report model.Report) error
}

// Options 是扫描服务的可选配置。
type Options struct {
	// Extensions 为空时使用 DefaultExtension。
	Extensions []string
	// Workers 小于等于 1 时完全顺序执行。
	Workers int
	// AbsolutePaths 为 true 时输出文件系统绝对路径，否则输出相对扫描根目录的路径。
	AbsolutePaths bool
	Logger        *slog.Logger
}

// Service 是扫描服务对象。
type Service struct {
	classifier    *classifier.Classifier
	extensions    []string
	workers       int
	absolutePaths bool
	logger        *slog.Logger
}

// scanTask 表示一个待分析文件任务。
type scanTask struct {
	index        int
	absolutePath string
	displayPath  string
}

// NewService 创建扫描服务。
func NewService(c *classifier.Classifier, options Options) *Service {
	extensions := make([]string, 0, len(options.Extensions))
	for _, ext := range options.Extensions {
		if ext = strings.TrimSpace(ext); ext != "" {
			extensions = append(extensions, ext)
		}
	}
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}

	workers := options.Workers
	if workers <= 0 {
		workers = 1
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		classifier:    c,
		extensions:    extensions,
		workers:       workers,
		absolutePaths: options.AbsolutePaths,
		logger:        logger,
	}
}

// Extensions 返回实际生效的后缀列表。
func (s *Service) Extensions() []string {
	return append([]string(nil), s.extensions...)
}

// Scan 扫描目录或单文件，把每个文件的结果流式写入 sink，最后写入总计。
// 任何匹配文件读取失败都会终止整次扫描。sink 可以为 nil。
func (s *Service) Scan(targetPath string, sink Sink) (model.Report, error) {
	report := model.Report{
		Extensions: s.Extensions(),
		Files:      make([]model.FileCount, 0),
	}

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return report, ErrEmptyPath
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return report, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return report, fmt.Errorf("stat path: %w", err)
	}
	report.ScannedPath = absoluteTarget

	emit := func(item model.FileCount) error {
		report.Add(item)
		if sink == nil {
			return nil
		}
		return sink.File(item)
	}

	if !info.IsDir() {
		err = s.scanSingleFile(absoluteTarget, emit)
	} else if s.workers == 1 {
		err = s.scanSequential(absoluteTarget, emit)
	} else {
		err = s.scanParallel(absoluteTarget, emit)
	}
	if err != nil {
		return report, err
	}

	s.logger.Debug("scan finished", "path", absoluteTarget, "files", len(report.Files), "total", report.Total)

	if sink != nil {
		if err := sink.Total(report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// scanSingleFile 在用户给定单文件路径时统计该文件。
func (s *Service) scanSingleFile(filePath string, emit func(model.FileCount) error) error {
	if !s.matches(filePath) {
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(filePath))
	}

	task := scanTask{absolutePath: filePath, displayPath: filePath}
	if !s.absolutePaths {
		task.displayPath = filepath.Base(filePath)
	}

	item, err := s.countFile(task)
	if err != nil {
		return err
	}
	return emit(item)
}

// scanSequential 边遍历边统计，每个文件读取、分类、输出后再处理下一个。
func (s *Service) scanSequential(root string, emit func(model.FileCount) error) error {
	return s.walk(root, func(task scanTask) error {
		item, err := s.countFile(task)
		if err != nil {
			return err
		}
		return emit(item)
	})
}

// walk 遍历目录并把匹配后缀的文件交给 visit。
// filepath.WalkDir 按字典序遍历，同一棵目录树每次结果一致。
func (s *Service) walk(root string, visit func(scanTask) error) error {
	index := 0
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk directory: %w", walkErr)
		}

		if entry.IsDir() {
			return nil
		}

		if !s.matches(path) {
			s.logger.Debug("skip file", "path", path)
			return nil
		}

		task := scanTask{
			index:        index,
			absolutePath: path,
			displayPath:  s.displayPath(root, path),
		}
		index++
		return visit(task)
	})
}

// matches 判断文件名是否以任一配置后缀结尾（区分大小写）。
func (s *Service) matches(path string) bool {
	name := filepath.Base(path)
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (s *Service) displayPath(root string, path string) string {
	if s.absolutePaths {
		return path
	}

	relativePath, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relativePath)
}

// CountFile 统计单个文件，不检查后缀。
func (s *Service) CountFile(path string) (model.FileCount, error) {
	return s.countFile(scanTask{absolutePath: path, displayPath: path})
}

// CountReader 读取 reader 的全部内容并统计，name 作为结果中的路径。
func (s *Service) CountReader(name string, reader io.Reader) (model.FileCount, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return model.FileCount{}, &FileError{Path: name, Err: err}
	}
	return s.countContent(name, content)
}

// countFile 读取整个文件后交给 countContent。
func (s *Service) countFile(task scanTask) (model.FileCount, error) {
	content, err := readFile(task.absolutePath)
	if err != nil {
		return model.FileCount{}, &FileError{Path: task.displayPath, Err: err}
	}
	return s.countContent(task.displayPath, content)
}

// countContent 校验文本编码后交给分类器统计。
func (s *Service) countContent(displayPath string, content []byte) (model.FileCount, error) {
	if !utf8.Valid(content) || enry.IsBinary(content) {
		return model.FileCount{}, &FileError{Path: displayPath, Err: ErrNotText}
	}

	lines, err := s.classifier.Count(bytes.NewReader(content))
	if err != nil {
		return model.FileCount{}, &FileError{Path: displayPath, Err: err}
	}

	s.logger.Debug("file classified", "path", displayPath, "lines", lines)
	return model.FileCount{Path: displayPath, Lines: lines}, nil
}

// readFile 打开、完整读取并关闭文件，关闭错误同样视为失败。
func readFile(path string) (content []byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return io.ReadAll(file)
}
