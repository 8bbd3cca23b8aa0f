// Package cli provides the headless command-line interface: catalog
// listing, document rendering and the two export actions, for scripted use
// without the TUI.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
	"github.com/draftkit/draftkit/internal/renderer"
	"github.com/draftkit/draftkit/internal/service"
)

// CLI provides headless command-line interface functionality
type CLI struct {
	service      *service.Service
	errorHandler *errors.CLIErrorHandler
}

// NewCLI creates a new CLI instance
func NewCLI(svc *service.Service) *CLI {
	return &CLI{
		service:      svc,
		errorHandler: errors.NewCLIErrorHandler(os.Getenv("VERBOSE") == "true"),
	}
}

// ExecuteCommand routes a CLI command to its handler
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	var err error
	switch command {
	case "categories":
		err = c.listCategories(commandArgs)
	case "list", "ls":
		err = c.listTemplates(commandArgs)
	case "search":
		err = c.searchTemplates(commandArgs)
	case "show", "get":
		err = c.showTemplate(commandArgs)
	case "render":
		err = c.renderDocument(commandArgs, actionPrint)
	case "copy":
		err = c.renderDocument(commandArgs, actionCopy)
	case "export":
		err = c.renderDocument(commandArgs, actionExport)
	case "sync":
		err = c.syncCatalog(commandArgs)
	case "help":
		err = c.printUsage()
	default:
		err = errors.CommandNotFoundError(command)
	}

	if err != nil {
		return c.errorHandler.HandleError(err)
	}
	return nil
}

// listCategories prints all template categories
func (c *CLI) listCategories(args []string) error {
	format := parseFlag(args, "--format", "table")

	categories := c.service.ListCategories()
	if format == "json" {
		return printJSON(categories)
	}

	for _, cat := range categories {
		count := len(c.service.TemplatesByCategory(cat.ID))
		fmt.Printf("%-15s %-20s %d templates\n", cat.ID, cat.Name, count)
	}
	return nil
}

// listTemplates prints templates, optionally filtered by category
func (c *CLI) listTemplates(args []string) error {
	format := parseFlag(args, "--format", "table")
	category := parseFlag(args, "--category", "")

	var templates []*models.Template
	if category != "" {
		templates = c.service.TemplatesByCategory(category)
	} else {
		templates = c.service.ListTemplates()
	}

	return c.formatOutput(templates, format)
}

// searchTemplates fuzzy-searches templates by name and description
func (c *CLI) searchTemplates(args []string) error {
	if len(args) == 0 {
		return errors.InvalidCommandError("search", "query is required")
	}
	format := parseFlag(args, "--format", "table")

	templates := c.service.SearchTemplates(args[0])
	return c.formatOutput(templates, format)
}

// showTemplate prints one template with its fields and placeholders
func (c *CLI) showTemplate(args []string) error {
	if len(args) == 0 {
		return errors.InvalidCommandError("show", "template ID is required")
	}
	format := parseFlag(args, "--format", "text")

	tmpl, err := c.service.Template(args[0])
	if err != nil {
		return err
	}

	if format == "json" {
		return printJSON(tmpl)
	}

	fmt.Printf("ID:       %s\n", tmpl.ID)
	fmt.Printf("Name:     %s\n", tmpl.Name)
	fmt.Printf("Category: %s\n", tmpl.Category)
	if tmpl.Summary != "" {
		fmt.Printf("Summary:  %s\n", tmpl.Summary)
	}

	if len(tmpl.Fields) > 0 {
		fmt.Println("\nCustom fields:")
		for _, f := range tmpl.Fields {
			required := "optional"
			if f.Required {
				required = "required"
			}
			fmt.Printf("  %-20s %-25s %s\n", f.ID, f.Name, required)
		}
	}

	if keys := renderer.Placeholders(tmpl.Content); len(keys) > 0 {
		fmt.Printf("\nPlaceholders: %s\n", strings.Join(keys, ", "))
	}

	fmt.Println("\n--- Content ---")
	fmt.Println(tmpl.Content)
	return nil
}

type renderAction int

const (
	actionPrint renderAction = iota
	actionCopy
	actionExport
)

// renderDocument generates a document from --var flags and prints, copies
// or exports it
func (c *CLI) renderDocument(args []string, action renderAction) error {
	if len(args) == 0 {
		return errors.InvalidCommandError("render", "template ID is required")
	}
	templateID := args[0]

	info := models.NewClientInfo()
	for i := 1; i < len(args); i++ {
		if args[i] != "--var" || i+1 >= len(args) {
			continue
		}
		i++
		parts := strings.SplitN(args[i], "=", 2)
		if len(parts) != 2 {
			return errors.InvalidCommandError("render", fmt.Sprintf("invalid --var %q, expected key=value", args[i]))
		}
		info.Set(parts[0], parts[1])
	}

	doc, result, err := c.service.GenerateDocument(templateID, info)
	if err != nil {
		return err
	}
	if !result.Valid {
		fields := make([]string, 0, len(result.Errors))
		for field := range result.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		fmt.Fprintln(os.Stderr, "Validation failed:")
		for _, field := range fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, result.Errors[field])
		}
		return errors.ValidationError("Client information is incomplete or malformed")
	}

	switch action {
	case actionCopy:
		msg, err := c.service.CopyDocument(doc)
		if err != nil {
			return err
		}
		fmt.Println(msg)
	case actionExport:
		path, err := c.service.ExportDocument(doc, parseFlag(args, "--output", ""))
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", path)
	default:
		fmt.Print(doc.Content)
	}
	return nil
}

// syncCatalog refreshes the catalog from the configured backend
func (c *CLI) syncCatalog(args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.service.RefreshFromRemote(ctx); err != nil {
		return err
	}
	fmt.Printf("Catalog refreshed: %d templates\n", len(c.service.ListTemplates()))
	return nil
}

// formatOutput prints templates in the requested format
func (c *CLI) formatOutput(templates []*models.Template, format string) error {
	switch format {
	case "json":
		return printJSON(templates)
	case "ids":
		for _, t := range templates {
			fmt.Println(t.ID)
		}
		return nil
	default:
		if len(templates) == 0 {
			fmt.Println("No templates found")
			return nil
		}
		for _, t := range templates {
			fmt.Printf("%-28s %-14s %s\n", t.ID, t.Category, t.Name)
		}
		return nil
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseFlag extracts a "--flag value" pair from args
func parseFlag(args []string, flag, defaultValue string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return defaultValue
}

// printUsage shows CLI command help
func (c *CLI) printUsage() error {
	fmt.Print(`draftkit commands:

  categories                    List template categories
  list [--category id]          List templates
  search <query>                Fuzzy-search templates
  show <id>                     Show a template with fields and placeholders
  render <id> --var k=v ...     Render a document to stdout
  copy <id> --var k=v ...       Render and copy to clipboard
  export <id> --var k=v ...     Render and write to the exports directory
         [--output name.txt]
  sync                          Refresh the catalog from the backend
  help                          Show this help

Formats: add --format table|json|ids where applicable.
`)
	return nil
}
