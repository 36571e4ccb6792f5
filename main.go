package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFlags are the per-invocation switches that are not part of Config.
type runFlags struct {
	pick      bool
	clipboard bool
	manifest  string
	pdf       string
}

var (
	flags   runFlags
	cfgFile string
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "consolidar [PATH]",
	Short: "Consolida os arquivos de código de um projeto em um único documento de texto.",
	Long: `consolidar percorre a pasta de um projeto, ignora pastas de dependências e de
build e grava cada arquivo de código aceito em projeto_consolidado.txt, com um
cabeçalho por arquivo. Sem PATH, pergunta qual pasta usar.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		code := execute(cmd.Context(), args, flags, viper.GetViper(), os.Stdin, os.Stdout, os.Stderr)
		if code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "arquivo de configuração (padrão: $HOME/.config/consolidar/config.toml)")

	rootCmd.Flags().BoolVar(&flags.pick, "pick", false, "Escolhe a pasta do projeto com busca difusa em vez de digitar o caminho")
	rootCmd.Flags().BoolVar(&flags.clipboard, "clipboard", false, "Copia o documento consolidado para a área de transferência")
	rootCmd.Flags().StringVar(&flags.manifest, "manifest", "", "Grava também um manifesto YAML da execução neste arquivo")
	rootCmd.Flags().StringVar(&flags.pdf, "pdf", "", "Gera também um PDF do documento consolidado neste arquivo")

	rootCmd.Flags().Bool("gitignore", false, "Ignora também os caminhos listados no .gitignore do projeto")
	viper.BindPFlag("gitignore", rootCmd.Flags().Lookup("gitignore"))
	rootCmd.Flags().Bool("tokens", false, "Conta os tokens dos arquivos consolidados")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
	rootCmd.Flags().String("tokenizer", "tiktoken", "Tokenizador: tiktoken ou huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().String("model", "", "Modelo do tokenizador (ex.: gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))

	setConfigDefaults(viper.GetViper())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	used, err := readConfigFile(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Aviso: %v\n", err)
		return
	}
	if used != "" {
		fmt.Fprintln(os.Stderr, "Usando arquivo de configuração:", used)
	}
}

// execute runs one consolidation and returns the process exit code.
func execute(ctx context.Context, args []string, rf runFlags, v *viper.Viper, stdin io.Reader, stdout, stderr io.Writer) int {
	if ctx == nil {
		ctx = context.Background()
	}
	console := NewConsole(stdout, stderr)

	cfg, err := LoadConfig(v, filepath.Base(os.Args[0]))
	if err != nil {
		console.Fatal(err)
		return 1
	}

	var prompter Prompter = newLinePrompter(stdin, stdout)
	if rf.pick {
		rules, err := NewRules(cfg, ".")
		if err != nil {
			console.Fatal(err)
			return 1
		}
		prompter = &fuzzyPrompter{fsys: osFS{}, rules: rules, start: "."}
	}

	root, err := ResolveRootPath(args, prompter)
	if err != nil {
		if errors.Is(err, errPickAborted) {
			console.Infof("Seleção cancelada.")
			return 0
		}
		console.Fatal(err)
		return 1
	}

	src := Source{Path: root}
	if isGitURL(root) {
		console.Infof("Clonando %s...", root)
		dir, err := cloneGitRepo(ctx, root, stderr)
		if err != nil {
			console.Fatal(err)
			return 1
		}
		defer os.RemoveAll(dir)
		name := repoName(root)
		src = Source{Path: dir, Label: name, Project: name}
	}

	opts := []Option{WithReporter(console)}
	if cfg.CountTokens {
		tk, err := newTokenizer(cfg.TokenizerType, cfg.TokenizerModel, console.Warnf)
		if err != nil {
			console.Warnf("contagem de tokens desativada: %v", err)
		} else {
			defer tk.Close()
			opts = append(opts, WithTokenizer(tk))
		}
	}

	res, err := NewConsolidator(cfg, opts...).RunSource(ctx, src)
	if err != nil {
		var notFound *PathNotFoundError
		if errors.As(err, &notFound) {
			console.PathNotFound(notFound.Path)
		} else {
			console.Fatal(err)
		}
		return 1
	}
	console.Succeeded(res, cfg.OutputName)

	if rf.manifest != "" {
		if err := writeManifest(res, rf.manifest); err != nil {
			console.Warnf("%v", err)
		}
	}
	if rf.pdf != "" {
		if err := generatePDF(res.OutputPath, res, rf.pdf, console.Warnf); err != nil {
			console.Warnf("%v", err)
		} else {
			console.Infof("PDF salvo em %s", rf.pdf)
		}
	}
	if rf.clipboard {
		if err := copyDocument(res.OutputPath); err != nil {
			console.Warnf("%v", err)
		} else {
			console.Infof("Documento copiado para a área de transferência.")
		}
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
