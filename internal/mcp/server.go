package mcp

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Satyapragyan-pradhan/pii-extractor/internal/config"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/document"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/pii"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	piiService *pii.Service
	documents  *document.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, piiService *pii.Service, documents *document.Service) (*Server, error) {
	if piiService == nil {
		return nil, fmt.Errorf("piiService cannot be nil")
	}
	if documents == nil {
		return nil, fmt.Errorf("documents cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		piiService: piiService,
		documents:  documents,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"pii_extract_file",
		mcp.WithDescription("Extract PII rows (names, addresses, ID numbers, phone, email, DOB) from one document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	extractDirectoryTool := mcp.NewTool(
		"pii_extract_directory",
		mcp.WithDescription("Extract PII rows from every supported document in a directory; failing documents are skipped"),
		mcp.WithString("directory",
			mcp.Description("Directory path to process (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(extractDirectoryTool, s.handleExtractDirectory)

	validateFileTool := mcp.NewTool(
		"pii_validate_file",
		mcp.WithDescription("Check whether a file is a supported, readable document within the size limit"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	exportTool := mcp.NewTool(
		"pii_export_xlsx",
		mcp.WithDescription("Extract PII rows from a directory and write them to an XLSX workbook"),
		mcp.WithString("directory",
			mcp.Description("Directory path to process (uses default if empty)"),
		),
		mcp.WithString("output",
			mcp.Required(),
			mcp.Description("Path of the workbook to write"),
		),
	)
	s.mcpServer.AddTool(exportTool, s.handleExportXLSX)

	serverInfoTool := mcp.NewTool(
		"pii_server_info",
		mcp.WithDescription("Get server information, available tools and supported document formats"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.piiService.ProcessDocument(ctx, path)
	if result.Status != pii.StatusSuccess {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", result.Status, result.Error)), nil
	}

	responseText := fmt.Sprintf("Extracted %d PII row(s) from %s\n", len(result.Rows), result.FileName)
	responseText += formatRows(result.Rows)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	directory := s.config.DocumentDirectory // default
	args := request.GetArguments()
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	batch, err := s.piiService.ProcessDirectory(ctx, directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Batch %s: %d PII row(s) from directory %s\n", batch.BatchID, len(batch.Rows), directory)
	if len(batch.FailedFiles) > 0 {
		responseText += fmt.Sprintf("Skipped %d document(s): %v\n", len(batch.FailedFiles), batch.FailedFiles)
	}
	responseText += formatRows(batch.Rows)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.documents.Validate(path); err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Document validation failed for %s: %v", path, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Document %s is supported and readable (%s)", path, document.Identify(path))), nil
}

func (s *Server) handleExportXLSX(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := request.RequireString("output")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	directory := s.config.DocumentDirectory // default
	args := request.GetArguments()
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	batch, err := s.piiService.ProcessDirectory(ctx, directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := pii.ExportXLSX(batch.Rows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := os.WriteFile(output, data, 0o600); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write workbook: %v", err)), nil
	}

	responseText := fmt.Sprintf("Wrote %d PII row(s) to %s", len(batch.Rows), output)
	if len(batch.FailedFiles) > 0 {
		responseText += fmt.Sprintf("\nSkipped %d document(s): %v", len(batch.FailedFiles), batch.FailedFiles)
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Default Directory: %s\n", s.config.DocumentDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n", s.config.MaxFileSize/(1024*1024))
	if s.config.NEREndpoint != "" {
		text += fmt.Sprintf("NER Service: %s\n", s.config.NEREndpoint)
	} else {
		text += "NER Service: disabled (pattern and heuristic strategies only)\n"
	}
	text += "\nSupported formats: pdf, docx, xlsx, xls, txt\n"
	text += "\nAvailable Tools:\n"
	text += "• pii_extract_file - extract PII rows from one document\n"
	text += "• pii_extract_directory - extract PII rows from a directory batch\n"
	text += "• pii_validate_file - check a document before processing\n"
	text += "• pii_export_xlsx - extract a directory batch and write an XLSX workbook\n"
	text += "• pii_server_info - this summary\n"
	return mcp.NewToolResultText(text), nil
}

// formatRows renders rows for tool responses, omitting empty fields.
func formatRows(rows []pii.Row) string {
	if len(rows) == 0 {
		return "No PII found.\n"
	}

	text := ""
	for i, row := range rows {
		text += fmt.Sprintf("\n%d. %s (page %d)\n", i+1, row.FileName, row.PageNumber)
		fields := []struct {
			label string
			value string
		}{
			{"Name", row.UserName},
			{"Phone", row.Phone},
			{"Email", row.Email},
			{"Aadhaar", row.Aadhaar},
			{"PAN", row.PAN},
			{"Address", row.Address},
			{"DL", row.DL},
			{"Voter ID", row.VoterID},
			{"DOB", row.DOB},
		}
		for _, f := range fields {
			if f.value != "" {
				text += fmt.Sprintf("   %s: %s\n", f.label, f.value)
			}
		}
		if row.UserName != "" {
			text += fmt.Sprintf("   Occurrences: %d\n", row.OccurrenceCount)
		}
	}
	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PII MCP server in stdio mode")
		log.Printf("Document directory: %s", s.config.DocumentDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server as a streamable HTTP endpoint
func (s *Server) runServerMode(ctx context.Context) error {
	log.Printf("Starting PII MCP server on %s", s.config.Address())

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(s.config.Address())
	}()

	select {
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	}
}
