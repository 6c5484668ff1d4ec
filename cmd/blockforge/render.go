package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	bferrors "github.com/blockforge-dev/blockforge/internal/errors"
	"github.com/blockforge-dev/blockforge/pkg/blocks"
	"github.com/blockforge-dev/blockforge/pkg/element"
	"github.com/blockforge-dev/blockforge/pkg/serialize"
)

func renderCmd() *cobra.Command {
	var (
		beautify  bool
		page      bool
		title     string
		useBlocks bool
		out       string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to HTML markup",
		Long: `Render a stored element tree (or, with --blocks, a block
document) to HTML markup. The document is read from the given file, or
from stdin when no file is passed.

Examples:
  blockforge render page.json
  blockforge render --beautify page.json
  blockforge render --blocks --page --title="Home" post.json
  cat page.json | blockforge render -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			node, err := decodeInput(input, useBlocks)
			if err != nil {
				return err
			}

			markup, err := renderMarkup(node, beautify, page, title)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), markup)
				return err
			}
			return os.WriteFile(out, []byte(markup), 0o644)
		},
	}

	cmd.Flags().BoolVarP(&beautify, "beautify", "b", false, "Indent output with tabs")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the fragment in a full HTML document")
	cmd.Flags().StringVar(&title, "title", "", "Document title (with --page)")
	cmd.Flags().BoolVar(&useBlocks, "blocks", false, "Treat input as a block document")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write output to a file instead of stdout")

	return cmd
}

// readInput reads the document from the file argument, or from stdin
// when the argument is missing or "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, bferrors.New("E401").Wrap(err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, bferrors.New("E401").Wrap(err)
	}
	return data, nil
}

func decodeInput(input []byte, useBlocks bool) (*element.Node, error) {
	if useBlocks {
		var doc []blocks.Block
		if err := json.Unmarshal(input, &doc); err != nil {
			return nil, bferrors.New("E102").Wrap(err)
		}
		return blocks.DefaultRegistry().RenderAll(doc), nil
	}

	node, err := element.DecodeNode(input)
	if err != nil {
		return nil, bferrors.New("E101").Wrap(err)
	}
	return node, nil
}

func renderMarkup(node *element.Node, beautify, page bool, title string) (string, error) {
	s := serialize.New(serialize.Config{Beautify: beautify})
	if !page {
		return s.RenderToString(node), nil
	}

	var sb strings.Builder
	if err := s.RenderDocument(&sb, serialize.Document{Body: node, Title: title}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
