package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cordialsys/addrconv/cmd/addrconv/setup"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// printResult writes text as is, or data as json/yaml depending on --output.
func printResult(cmd *cobra.Command, text string, data any) error {
	args := setup.UnwrapArgs(cmd.Context())
	out := cmd.OutOrStdout()
	switch args.Output {
	case "json":
		_, err := fmt.Fprintln(out, asJson(data))
		return err
	case "yaml":
		bz, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, string(bz))
		return err
	default:
		_, err := fmt.Fprintln(out, text)
		return err
	}
}
