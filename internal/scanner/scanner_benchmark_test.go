package scanner

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"solloc/internal/classifier"
)

// prepareBenchmarkFile 创建一个用于单文件扫描基准测试的 Solidity 文件。
func prepareBenchmarkFile(b *testing.B) string {
	b.Helper()

	tempDir := b.TempDir()
	filePath := filepath.Join(tempDir, "Large.sol")

	lines := make([]string, 0, 6000)
	lines = append(lines, "pragma solidity ^0.8.0;", "")
	for i := 0; i < 2000; i++ {
		lines = append(lines, "uint256 value"+strconv.Itoa(i)+" = 1; // inline comment")
		lines = append(lines, "/* block comment */")
		lines = append(lines, "function f"+strconv.Itoa(i)+"() public { value"+strconv.Itoa(i)+" += 1; }")
	}

	if err := os.WriteFile(filePath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		b.Fatalf("write benchmark fixture failed: %v", err)
	}
	return filePath
}

// prepareBenchmarkDirectory 创建目录扫描基准测试数据。
func prepareBenchmarkDirectory(b *testing.B) string {
	b.Helper()

	tempDir := b.TempDir()
	for i := 0; i < 200; i++ {
		solFile := filepath.Join(tempDir, "contracts", "C"+strconv.Itoa(i)+".sol")
		jsFile := filepath.Join(tempDir, "scripts", "deploy"+strconv.Itoa(i)+".js")

		if err := os.MkdirAll(filepath.Dir(solFile), 0o755); err != nil {
			b.Fatalf("mkdir sol fixture dir failed: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(jsFile), 0o755); err != nil {
			b.Fatalf("mkdir js fixture dir failed: %v", err)
		}

		if err := os.WriteFile(solFile, []byte("contract C {\n    uint x = 1; // c\n}"), 0o644); err != nil {
			b.Fatalf("write sol fixture failed: %v", err)
		}
		if err := os.WriteFile(jsFile, []byte("const x = 1; // c"), 0o644); err != nil {
			b.Fatalf("write js fixture failed: %v", err)
		}
	}
	return tempDir
}

// BenchmarkScanSingleFile 衡量单文件扫描性能。
func BenchmarkScanSingleFile(b *testing.B) {
	filePath := prepareBenchmarkFile(b)
	service := NewService(classifier.New(classifier.DefaultSyntax()), Options{})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.Scan(filePath, nil); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}

// BenchmarkScanDirectory 衡量目录并发扫描性能。
func BenchmarkScanDirectory(b *testing.B) {
	dirPath := prepareBenchmarkDirectory(b)
	service := NewService(classifier.New(classifier.DefaultSyntax()), Options{Workers: 8})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.Scan(dirPath, nil); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}

// BenchmarkScanDirectorySequential 衡量目录顺序扫描性能。
func BenchmarkScanDirectorySequential(b *testing.B) {
	dirPath := prepareBenchmarkDirectory(b)
	service := NewService(classifier.New(classifier.DefaultSyntax()), Options{})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.Scan(dirPath, nil); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}
