package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/yasl-lang/yasl/lexer"
)

var (
	useRepr bool

	tokensCmd = &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a YASL source file, one token per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("Wrong number of arguments")
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			s := lexer.New(lexer.FileRef(args[0]), f)
			for {
				tok := s.Next()
				if useRepr {
					repr.Println(tok)
				} else {
					fmt.Println(tok)
				}
				if tok.Type == lexer.EOFToken {
					break
				}
			}
			return s.Close()
		},
	}
)

func init() {
	tokensCmd.Flags().BoolVar(&useRepr, "repr", false, "dump tokens as Go syntax instead of line:col TYPE(text)")
	rootCmd.AddCommand(tokensCmd)
}
