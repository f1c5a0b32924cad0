package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/woby-dev/woby/internal/config"
	"github.com/woby-dev/woby/internal/demo"
	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/element"
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/render"
	"github.com/woby-dev/woby/pkg/woby"
)

// runtimeOptions maps the dev configuration onto runtime options.
func runtimeOptions(cfg *config.Config, logger *slog.Logger) []reactive.Option {
	return []reactive.Option{
		reactive.WithLogger(logger),
		reactive.WithStrict(cfg.Dev.Strict),
		reactive.WithMaxFlushPasses(cfg.Dev.MaxFlushPasses),
	}
}

// mountDemo mounts the demo application into a new document.
func mountDemo(cfg *config.Config, logger *slog.Logger) (*dom.Document, func(), error) {
	rt := reactive.NewRuntime(runtimeOptions(cfg, logger)...)
	doc, root, err := demo.App(element.WithLogger(logger))(rt)
	if err != nil {
		return nil, nil, err
	}
	dispose, err := woby.Render(rt, root, doc.Body())
	if err != nil {
		return nil, nil, err
	}
	return doc, dispose, nil
}

func renderCmd(opts *options) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the demo document as HTML",
		Long: `Render the demo application once and print the resulting page.

Examples:
  woby render
  woby render --pretty > index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			doc, dispose, err := mountDemo(cfg, logger)
			if err != nil {
				return err
			}
			defer dispose()

			renderer := render.NewRenderer(render.RendererConfig{
				Pretty:       pretty || cfg.Render.Pretty,
				SkipComments: true,
			})
			return renderer.RenderPage(cmd.OutOrStdout(), render.PageData{
				Title: "woby",
				Body:  doc.Body(),
			})
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}
