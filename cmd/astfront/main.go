// Command astfront parses one source file and prints or visualises its
// abstract syntax tree.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
	isatty "github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theSprog/astfront/astdump"
	"github.com/theSprog/astfront/diag"
	"github.com/theSprog/astfront/parser"
)

var (
	cfgFile  string
	red      = color.New(color.FgRed).SprintfFunc()
	wantAST  bool
	wantJSON bool
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	cobra.OnInitialize(initConfig)
	viper.SetEnvPrefix("astfront")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.astfront.yaml)")
	rootCmd.Flags().BoolVarP(&wantAST, "ast", "a", false, "Write a Graphviz DOT (and PNG, if dot is installed) rendering of the tree")
	rootCmd.Flags().BoolVar(&wantJSON, "json", false, "Print the tree as indented JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".astfront")
		}
	}
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config file")
	}
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

var rootCmd = &cobra.Command{
	Use:           "astfront <file>",
	Short:         "Parse a source file and print or visualise its syntax tree",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", red("error: %s", err.Error()))
		return usageError{err}
	}

	filename := filepath.Base(path)
	log.Debug().Str("file", filename).Int("bytes", len(source)).Msg("parsing")

	program, err := parser.Parse(string(source), parser.WithFilename(filename))
	if err != nil {
		fmt.Fprintln(os.Stderr, red("%s", err.Error()))
		switch err.(type) {
		case *diag.LexerError, *diag.ParserError:
			return parseError{err}
		default:
			return err
		}
	}

	if wantJSON {
		if err := printJSON(program); err != nil {
			return err
		}
	}

	if wantAST {
		dotPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".dot"
		dotSrc := astdump.Dot(program)
		if err := os.WriteFile(dotPath, []byte(dotSrc), 0o644); err != nil {
			return err
		}
		log.Info().Str("file", dotPath).Msg("wrote AST graph")
		if err := astdump.RenderPNG(dotPath); err != nil {
			log.Warn().Err(err).Msg("dot rendering failed")
		}
	}

	if !wantJSON && !wantAST {
		fmt.Println("parsed OK")
	}
	return nil
}

func jsonIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func printJSON(v any) error {
	var out []byte
	var err error
	if isatty.IsTerminal(os.Stdout.Fd()) {
		out, err = prettyjson.Marshal(v)
	} else {
		out, err = jsonIndent(v)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// usageError marks a failure in the command's own invocation (missing
// file, unreadable path) so main can distinguish it from a located
// lexer/parser diagnostic for exit-code purposes.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

// parseError wraps a diag.LexerError/diag.ParserError already printed to
// stderr, so main's exit-code switch does not print it a second time.
type parseError struct{ err error }

func (e parseError) Error() string { return e.err.Error() }

func main() {
	if err := rootCmd.Execute(); err != nil {
		switch err.(type) {
		case usageError:
			os.Exit(2)
		case parseError:
			os.Exit(1)
		default:
			fmt.Fprintln(os.Stderr, red("%s", err.Error()))
			os.Exit(2)
		}
	}
}
