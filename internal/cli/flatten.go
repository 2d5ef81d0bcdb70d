package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nxdevel/nx-misc/internal/errors"
	"github.com/nxdevel/nx-misc/pkg/flatten"
)

var (
	flattenFields      []string
	flattenRestVal     string
	flattenAllowExtras bool
)

// flattenCmd extracts named fields from a YAML mapping in order.
var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Extract named fields from a YAML mapping",
	Long: `Read a YAML mapping and print the requested field values in order,
one per line. Reads stdin when no file is given or the file is "-".

Missing fields are an error unless --rest-val supplies a substitute.
Keys outside the field list are an error unless --allow-extras is set.

Examples:
  nx flatten --fields name,email users.yaml
  nx flatten --fields a,b,c --rest-val n/a data.yaml
  cat data.yaml | nx flatten --fields a,b --allow-extras`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(flattenFields) == 0 {
			return errors.New(errors.ErrFlatten,
				"No fields requested",
				"Pass --fields with a comma-separated field list")
		}

		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		var m map[string]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			return errors.WrapWithCode(err, errors.ErrFlatten,
				"Cannot decode input",
				"The input must be a YAML mapping")
		}

		opts := flatten.Options{AllowExtras: flattenAllowExtras}
		if cmd.Flags().Changed("rest-val") {
			opts = opts.WithRestVal(flattenRestVal)
		}

		values, err := flatten.Map(m, flattenFields, opts)
		if err != nil {
			return err
		}

		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

// readInput returns the named file's contents, or stdin for "-" / no arg.
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrFlatten,
				"Cannot read stdin", "")
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFlatten,
			"Cannot read "+args[0],
			"Check the path and permissions")
	}
	return data, nil
}

func init() {
	flattenCmd.Flags().StringSliceVar(&flattenFields, "fields", nil, "comma-separated field names, in output order")
	flattenCmd.Flags().StringVar(&flattenRestVal, "rest-val", "", "substitute value for missing fields")
	flattenCmd.Flags().BoolVar(&flattenAllowExtras, "allow-extras", false, "accept keys outside the field list")

	rootCmd.AddCommand(flattenCmd)
}
