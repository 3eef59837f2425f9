package cli

import (
	"github.com/spf13/cobra"

	"github.com/archigen/archigen/pkg/errors"
	"github.com/archigen/archigen/pkg/export/archixml"
	docio "github.com/archigen/archigen/pkg/io"
)

// newValidateCmd creates the validate command. It checks the document
// structurally and, unless --skip-export is set, round-trips it
// through the XML exporter to surface export findings as well.
func newValidateCmd() *cobra.Command {
	var skipExport bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a model document for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := docio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			d, err := doc.Diagram()
			if err != nil {
				return err
			}

			issues := d.Validate()
			if !skipExport && len(issues) == 0 {
				data, err := archixml.NewExporter().Export(d, archixml.Options{})
				if err != nil {
					return err
				}
				issues = append(issues, archixml.Validate(data)...)
			}

			if len(issues) == 0 {
				printSuccess("%s is valid", args[0])
				return nil
			}
			for _, issue := range issues {
				printWarning("%s", issue)
			}
			return errors.New(errors.ErrCodeInvalidInput, "%d issue(s) found", len(issues))
		},
	}

	cmd.Flags().BoolVar(&skipExport, "skip-export", false, "skip the XML export round trip")

	return cmd
}
