package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/uconv/pkg/version"
)

// Licence lines printed after the version.
const (
	copyrightLine = "Copyright (c)2013 Kevin Boone"
	licenceLine   = "Freely distributable under the terms of the GNU Public Licence"
)

// versionTemplate is used by the root command's -v/--version flag.
const versionTemplate = "{{.Name}} version {{.Version}}\n" + copyrightLine + "\n" + licenceLine + "\n"

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version and licence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ver := cmd.Root().Version
			if short {
				cmd.Println(ver)
				return nil
			}
			return writeVersion(cmd.OutOrStdout(), cmd.Root().Name(), ver)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}

func writeVersion(w io.Writer, name, ver string) error {
	suffix := ""
	if v, err := version.Parse(ver); err != nil || v.Prerelease() != "" {
		suffix = " (development build)"
	}
	_, err := fmt.Fprintf(w, "%s version %s%s\n%s\n%s\n", name, ver, suffix, copyrightLine, licenceLine)
	return err
}
