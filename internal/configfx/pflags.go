package configfx

import (
	"os"

	"github.com/spf13/pflag"
)

func PFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)

	fs.StringP("config", "c", "", "Rule file, or directory of rule files")
	fs.BoolP("dry-run", "d", false, "Only report what would be purged; don't delete anything")

	// ExitOnError: an unknown flag is a usage error and exits non-zero.
	_ = fs.Parse(os.Args[1:])

	return fs
}
