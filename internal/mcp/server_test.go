package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Satyapragyan-pradhan/pii-extractor/internal/config"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/document"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/extract"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/pii"
)

const testMaxFileSize = int64(1024 * 1024)

func newTestConfig(dir string) *config.Config {
	return &config.Config{
		Mode:              "stdio",
		Host:              "127.0.0.1",
		Port:              8080,
		DocumentDirectory: dir,
		Version:           "1.0.0",
		ServerName:        "test-server",
		LogLevel:          "info",
		MaxFileSize:       testMaxFileSize,
	}
}

func newTestServer(t *testing.T, dir string) *Server {
	t.Helper()
	documents := document.NewService(testMaxFileSize)
	piiService := pii.NewService(documents, extract.NewEngine(nil))
	server, err := NewServer(newTestConfig(dir), piiService, documents)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	tempDir := t.TempDir()
	documents := document.NewService(testMaxFileSize)
	piiService := pii.NewService(documents, extract.NewEngine(nil))

	server, err := NewServer(newTestConfig(tempDir), piiService, documents)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatal("server should not be nil")
	}
	if server.piiService != piiService {
		t.Error("server piiService not set correctly")
	}
	if server.documents != documents {
		t.Error("server documents not set correctly")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should be initialized")
	}
}

func TestNewServer_NilServices(t *testing.T) {
	tempDir := t.TempDir()
	documents := document.NewService(testMaxFileSize)
	piiService := pii.NewService(documents, extract.NewEngine(nil))

	if _, err := NewServer(newTestConfig(tempDir), nil, documents); err == nil {
		t.Error("expected error for nil piiService")
	}
	if _, err := NewServer(newTestConfig(tempDir), piiService, nil); err == nil {
		t.Error("expected error for nil documents")
	}
}

func TestServer_HandleExtractFile(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "application.txt")
	content := "Name: Ravi Kumar\nPAN: ABCDE1234F\nDOB: 01/01/1990\n"
	if err := os.WriteFile(testFile, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	server := newTestServer(t, tempDir)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleExtractFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Ravi Kumar") {
		t.Errorf("expected extracted name in response, got: %s", resultText)
	}
	if !strings.Contains(resultText, "ABCDE1234F") {
		t.Errorf("expected PAN in response, got: %s", resultText)
	}
}

func TestServer_HandleExtractFile_MissingPath(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleExtractFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Errorf("expected error result for missing path argument")
	}
}

func TestServer_HandleValidateFile(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "form.txt")
	if err := os.WriteFile(testFile, []byte("Name: Ravi Kumar"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	server := newTestServer(t, tempDir)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "supported and readable") {
		t.Errorf("expected validation success, got: %s", resultText)
	}
}

func TestServer_HandleValidateFile_Unsupported(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "photo.jpg")
	if err := os.WriteFile(testFile, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	server := newTestServer(t, tempDir)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "validation failed") {
		t.Errorf("expected validation failure, got: %s", resultText)
	}
}

func TestServer_HandleExtractDirectory(t *testing.T) {
	tempDir := t.TempDir()
	files := map[string]string{
		"a.txt": "Name: Ravi Kumar\nPAN: ABCDE1234F\n",
		"b.txt": "Name: Sita Devi\nAadhaar: 1234 5678 9012\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", name, err)
		}
	}

	server := newTestServer(t, tempDir)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": tempDir,
			},
		},
	}

	result, err := server.handleExtractDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "2 PII row(s)") {
		t.Errorf("expected 2 rows in response, got: %s", resultText)
	}
}

func TestServer_HandleExportXLSX(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "a.txt"),
		[]byte("Name: Ravi Kumar\nPAN: ABCDE1234F\n"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	output := filepath.Join(tempDir, "out", "report.xlsx")
	if err := os.Mkdir(filepath.Dir(output), 0o755); err != nil {
		t.Fatalf("failed to create output directory: %v", err)
	}

	server := newTestServer(t, tempDir)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": tempDir,
				"output":    output,
			},
		},
	}

	result, err := server.handleExportXLSX(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Wrote 1 PII row(s)") {
		t.Errorf("expected written row count, got: %s", resultText)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected workbook file to exist: %v", err)
	}
}

func TestServer_HandleServerInfo(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	result, err := server.handleServerInfo(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	for _, expected := range []string{
		"test-server",
		"pii_extract_file",
		"pii_extract_directory",
		"pii_validate_file",
		"pii_export_xlsx",
		"NER Service: disabled",
	} {
		if !strings.Contains(resultText, expected) {
			t.Errorf("expected server info to contain %q, got: %s", expected, resultText)
		}
	}
}

// extractTextFromResult pulls the text content out of a tool result.
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}
	return ""
}
