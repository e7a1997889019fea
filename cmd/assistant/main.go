package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genai"

	"github.com/honeycarbs/resume-assistant/internal/config"
)

const (
	maxIterations = 10
	toolTimeout   = 2 * time.Minute
)

const systemPromptTemplate = `You are a career assistant helping a candidate with their job search.

AVAILABLE TOOLS:
- job_search: find job postings for a query, location and job type
- job_search_by_resume: derive a search term from resume skills and search with it
- extract_skills: list the technical skills found in a resume
- job_recommendations: suggest roles and industries that fit a resume
- career_paths: outline career progressions from the current experience
- cover_letter: write a cover letter for a job description
- resume_analysis: review a resume with strengths, improvements and a 1-10 score
- project_fit: rate resume projects against a job offer
- interview_start, interview_reply, interview_advance, interview_end: run a mock interview session
- sheets_export: write job search results to Google Sheets%s

RULES:
1. Pick the single tool that answers the request. Do not chain tools unless the user asks for it.
2. When a mock interview is running, pass the session_id from interview_start to every later call.
3. If a tool fails, explain the error in plain language and suggest a next step.
4. Never make up job postings. Only use data returned by tools.`

// Client bridges Gemini function calling to the resume assistant MCP tools
type Client struct {
	mcpSession *mcp.ClientSession
	gemini     *genai.Client
	model      string
	config     *genai.GenerateContentConfig
	tools      []*mcp.Tool
}

func NewClient(ctx context.Context, mcpEndpoint, apiKey, model, sheetsID string) (*Client, error) {
	mcpClient := mcp.NewClient(&mcp.Implementation{
		Name:    "resume-assistant-chat",
		Version: "0.1.0",
	}, nil)

	session, err := mcpClient.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: mcpEndpoint,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MCP server at %s: %w", mcpEndpoint, err)
	}

	gemini, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to initialize Gemini: %w", err)
	}

	toolsResp, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	sheetsInstruction := ""
	if sheetsID != "" {
		sheetsInstruction = fmt.Sprintf("\n\nFor sheets_export always use spreadsheet_id %q. Do not ask the user for it.", sheetsID)
	}

	return &Client{
		mcpSession: session,
		gemini:     gemini,
		model:      model,
		tools:      toolsResp.Tools,
		config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(fmt.Sprintf(systemPromptTemplate, sheetsInstruction), genai.RoleUser),
			Tools:             declarations(toolsResp.Tools),
		},
	}, nil
}

func (c *Client) Close() error {
	return c.mcpSession.Close()
}

// declarations exposes every MCP tool to Gemini, passing the input schema through as JSON schema
func declarations(tools []*mcp.Tool) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		decl := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}
		if tool.InputSchema != nil {
			decl.ParametersJsonSchema = tool.InputSchema
		}
		decls = append(decls, decl)
	}
	if len(decls) == 0 {
		return nil
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// RunQuery loops between Gemini and the MCP server until the model answers in text
func (c *Client) RunQuery(ctx context.Context, userQuery string) error {
	chat, err := c.gemini.Chats.Create(ctx, c.model, c.config, nil)
	if err != nil {
		return fmt.Errorf("gemini chat: %w", err)
	}

	parts := []genai.Part{*genai.NewPartFromText(userQuery)}

	for iteration := 1; iteration <= maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := chat.SendMessage(ctx, parts...)
		if err != nil {
			return fmt.Errorf("gemini API error: %w", err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			text := strings.TrimSpace(resp.Text())
			if text == "" {
				return errors.New("empty response from Gemini")
			}
			fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 80), text, strings.Repeat("=", 80))
			return nil
		}

		parts = parts[:0]
		for _, call := range calls {
			fmt.Printf("[Tool] %s\n", call.Name)

			result, err := c.callMCPTool(ctx, call.Name, call.Args)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Printf("[Error] %s: %v\n", call.Name, err)
				result = map[string]any{"error": err.Error()}
			}
			parts = append(parts, *genai.NewPartFromFunctionResponse(call.Name, result))
		}
	}

	return errors.New("max iterations reached")
}

func (c *Client) callMCPTool(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	if args == nil {
		args = map[string]any{}
	}

	toolCtx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	result, err := c.mcpSession.CallTool(toolCtx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			texts = append(texts, text.Text)
		}
	}

	output := "Tool executed successfully"
	if len(texts) > 0 {
		output = strings.Join(texts, "\n")
	}
	if result.IsError {
		return map[string]any{"error": output}, nil
	}
	return map[string]any{"result": output}, nil
}

func streamEndpoint(raw string) string {
	if raw == "" {
		raw = "http://localhost:8080"
	}
	if strings.HasSuffix(raw, "/mcp/stream") {
		return raw
	}
	return strings.TrimSuffix(raw, "/") + "/mcp/stream"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Fatal("GOOGLE_API_KEY or GEMINI_API_KEY environment variable must be set")
	}

	endpoint := streamEndpoint(os.Getenv("MCP_URL"))
	sheetsID := os.Getenv("GOOGLE_SHEETS_ID")

	fmt.Printf("MCP Server URL: %s\nGemini Model: %s\n", endpoint, cfg.Gemini.Model)

	client, err := NewClient(ctx, endpoint, cfg.Gemini.APIKey, cfg.Gemini.Model, sheetsID)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("Loaded %d tools (session ID: %s)\n", len(client.tools), client.mcpSession.ID())

	if len(os.Args) > 1 {
		if err := client.RunQuery(ctx, strings.Join(os.Args[1:], " ")); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	fmt.Println("\nType 'quit' or 'exit' to end the session.")

	inputs := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs <- scanner.Text()
		}
		close(inputs)
	}()

	for {
		fmt.Print("\nYour request: ")

		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down...")
			return
		case input, ok := <-inputs:
			if !ok {
				return
			}
			input = strings.TrimSpace(input)
			switch strings.ToLower(input) {
			case "":
				continue
			case "quit", "exit", "q":
				return
			}

			if err := client.RunQuery(ctx, input); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				fmt.Printf("\nAn error occurred: %v\n", err)
			}
		}
	}
}
