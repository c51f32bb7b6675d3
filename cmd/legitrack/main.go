// Command legitrack tracks legislative propositions from the Câmara dos
// Deputados open-data API: fetch, normalize, filter by theme, enrich with
// authors, and present or export the results.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/legitrack/legitrack/internal/camara"
	"github.com/legitrack/legitrack/internal/config"
	"github.com/legitrack/legitrack/internal/enrich"
	"github.com/legitrack/legitrack/internal/export"
	"github.com/legitrack/legitrack/internal/proposicao"
	"github.com/legitrack/legitrack/internal/search"
	"github.com/legitrack/legitrack/internal/web"
)

var (
	cfgPath  string
	logLevel string
	cfg      config.Config
)

func main() {
	root := &cobra.Command{
		Use:   "legitrack",
		Short: "Radar temático de proposições da Câmara dos Deputados",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
				log.SetLevel(lvl)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(searchCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newClient() *camara.Client {
	return camara.NewClient(
		camara.WithBaseURL(cfg.API.BaseURL),
		camara.WithTimeout(time.Duration(cfg.API.Timeout)),
		camara.WithRetries(cfg.API.MaxRetries),
	)
}

func searchCmd() *cobra.Command {
	var (
		tema   string
		ano    int
		tipos  []string
		itens  int
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fetch and list propositions, optionally filtered by theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			props, err := run(ctx, tema, ano, tipos, itens)
			if err != nil {
				return err
			}

			if out != "" {
				return writeFile(out, format, props)
			}
			printResults(props, tema)
			return nil
		},
	}

	cmd.Flags().StringVar(&tema, "tema", "", "Keyword filter over the ementa text")
	cmd.Flags().IntVar(&ano, "ano", 0, "Presentation year")
	cmd.Flags().StringSliceVar(&tipos, "tipos", nil, "Proposition types (default from config)")
	cmd.Flags().IntVar(&itens, "itens", 0, "Maximum items per type (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "Write results to a file instead of stdout")
	cmd.Flags().StringVar(&format, "formato", "", "Output format for --out: csv, json, or xlsx")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			if host != "" {
				cfg.HTTP.Host = host
			}
			if port > 0 {
				cfg.HTTP.Port = port
			}

			client := newClient()
			enricher := enrich.New(client, cfg.Busca.Workers)
			srv := web.NewServer(client, enricher, cfg.Busca.Tipos, cfg.Busca.Itens)
			return srv.Start(cfg.HTTP.Addr())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind to")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on")
	return cmd
}

// run executes the full pipeline: fetch, normalize, theme-filter, enrich.
func run(ctx context.Context, tema string, ano int, tipos []string, itens int) ([]proposicao.Proposicao, error) {
	if len(tipos) == 0 {
		tipos = cfg.Busca.Tipos
	}
	if itens <= 0 {
		itens = cfg.Busca.Itens
	}

	client := newClient()
	raw, err := client.ListPropositions(ctx, camara.ListParams{
		Types:   tipos,
		Year:    ano,
		Items:   itens,
		OrderBy: cfg.Busca.OrdPor,
		Order:   cfg.Busca.Ordem,
	})
	if err != nil {
		return nil, err
	}
	log.Info("fetched propositions", "count", len(raw), "tipos", tipos, "ano", ano)

	props := proposicao.Normalize(raw)
	if tema != "" {
		props, err = search.MatchTheme(props, tema)
		if err != nil {
			return nil, err
		}
		log.Info("filtered by theme", "tema", tema, "matches", len(props))
	}

	stats := enrich.New(client, cfg.Busca.Workers).Enrich(ctx, props)
	log.Info("enriched authors",
		"found", stats.AuthorsFound,
		"missing", stats.AuthorsMissing,
		"duration", stats.Duration)
	return props, nil
}

func writeFile(path, format string, props []proposicao.Proposicao) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := export.Write(file, f, props); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("Wrote %d propositions to %s\n", len(props), path)
	return nil
}

func printResults(props []proposicao.Proposicao, tema string) {
	if len(props) == 0 {
		if tema != "" {
			fmt.Printf("No propositions mention %q\n", tema)
		} else {
			fmt.Println("No propositions found")
		}
		return
	}

	fmt.Printf("\nFound %d propositions:\n\n", len(props))
	for i := range props {
		p := &props[i]

		title := "(sem rótulo)"
		if p.Rotulo != nil {
			title = *p.Rotulo
		}
		fmt.Printf("%d. %s\n", i+1, title)

		if p.Autor != nil && p.Autor.Nome != "" {
			autor := p.Autor.Nome
			if p.Autor.Partido != "" && p.Autor.UF != "" {
				autor = fmt.Sprintf("%s (%s-%s)", autor, p.Autor.Partido, p.Autor.UF)
			}
			fmt.Printf("   Autor: %s\n", autor)
		}
		if p.Ementa != "" {
			fmt.Printf("   Ementa: %s\n", truncate(p.Ementa, 120))
		}
		if p.Situacao != "" {
			fmt.Printf("   Situação: %s\n", p.Situacao)
		}
		if p.DataStatus != nil {
			fmt.Printf("   Último status: %s", p.DataStatus.Format("2006-01-02"))
			if p.DiasDesdeStatus != nil {
				fmt.Printf(" (%d dia(s) atrás)", *p.DiasDesdeStatus)
			}
			fmt.Println()
		}
		if p.Link != "" {
			fmt.Printf("   Link: %s\n", p.Link)
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
