package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/documenso/singleplayer/internal/document"
	"github.com/documenso/singleplayer/internal/lib/payload"
	"github.com/documenso/singleplayer/internal/lib/utils"
	"github.com/documenso/singleplayer/internal/validation"
)

// errRejected reports that the checked request has violations. The
// violations are already printed, so main only sets the exit status.
var errRejected = errors.New("request rejected")

type checkResult struct {
	Valid      bool                  `json:"valid"`
	Violations validation.Violations `json:"violations,omitempty"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a creation request read from a JSON or YAML file (\"-\" for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], document.NewRequestValidator())
		},
	}
}

func check(stdin io.Reader, out io.Writer, name string, v *document.RequestValidator) error {
	data, err := readInput(stdin, name)
	if err != nil {
		return err
	}

	input, err := payload.Decode(name, data)
	if err != nil {
		return err
	}

	_, err = v.Validate(input)

	var violations validation.Violations
	switch {
	case err == nil:
		return utils.PrintJSON(out, checkResult{Valid: true})
	case errors.As(err, &violations):
		if perr := utils.PrintJSON(out, checkResult{Violations: violations}); perr != nil {
			return perr
		}
		return errRejected
	default:
		return err
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
