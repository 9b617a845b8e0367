package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yasl-lang/yasl/lexer"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check <path>...",
		Short: "Scan YASL sources and report lexical diagnostics",
		Long:  "Scans the given files, or directory subtrees which will be scanned for *.yasl-files, and exits non-zero if any lexical errors were found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("Expected at least one file or directory")
			}
			logger := logrus.StandardLogger()

			var files []string
			for _, arg := range args {
				info, err := os.Stat(arg)
				if err != nil {
					return err
				}
				if !info.IsDir() {
					files = append(files, arg)
					continue
				}
				err = filepath.Walk(arg, func(path string, info fs.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && strings.HasSuffix(info.Name(), ".yasl") {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			total := 0
			for _, path := range files {
				n, err := checkFile(logger, path)
				if err != nil {
					return err
				}
				total += n
			}
			if total > 0 {
				return fmt.Errorf("%d lexical error(s)", total)
			}
			return nil
		},
	}
)

// checkFile drains the token stream of one file, forwarding diagnostics to
// the logger, and returns how many there were.
func checkFile(logger logrus.FieldLogger, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	var diags lexer.ErrorList
	s := lexer.NewWithReporter(lexer.FileRef(path), f, &diags)
	for s.Next().Type != lexer.EOFToken {
	}
	if err := s.Close(); err != nil {
		return 0, err
	}
	rep := lexer.LogReporter{Logger: logger}
	for _, e := range diags {
		rep.Report(e)
	}
	return len(diags), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
