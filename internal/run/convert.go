// Package run implements the docunit subcommands.
package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/docunit"
	"github.com/tsawler/docunit/config"
	"github.com/tsawler/docunit/internal/state"
	"github.com/tsawler/docunit/model"
)

// Convert is the action of the convert subcommand.
func Convert(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("no input files have been specified")
	}

	if cmd.IsSet("output") {
		env.Cfg.Output.Directory = cmd.String("output")
	}
	if cmd.IsSet("standalone") {
		env.Cfg.Output.Standalone = cmd.Bool("standalone")
	}
	if cmd.IsSet("overwrite") {
		env.Cfg.Output.Overwrite = cmd.Bool("overwrite")
	}

	if env.Cfg.Output.Standalone && env.Cfg.Output.Stylesheet != "" {
		data, err := os.ReadFile(env.Cfg.Output.Stylesheet)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", env.Cfg.Output.Stylesheet, err)
		}
		env.Stylesheet = data
	}

	dst, err := filepath.Abs(env.Cfg.Output.Directory)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}

	log.Info("Processing starting", zap.Int("files", len(files)), zap.String("destination", dst), zap.Int("workers", env.Cfg.Workers))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return convertFiles(ctx, files, dst, env, log)
}

// convertFiles converts every file, at most cfg.Workers at a time. A failing
// file does not stop the others; all failures are returned together.
func convertFiles(ctx context.Context, files []string, dst string, env *state.LocalEnv, log *zap.Logger) error {
	var (
		mu   sync.Mutex
		errs error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(env.Cfg.Workers, 1))
	for _, src := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := convertFile(src, dst, env, log)
			if err != nil {
				log.Error("Unable to convert file", zap.String("file", src), zap.Error(err))
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", src, err))
				mu.Unlock()
				return nil
			}
			log.Info("Converted", zap.String("file", src), zap.String("to", out))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errs
}

func convertFile(src, dst string, env *state.LocalEnv, log *zap.Logger) (string, error) {
	out := filepath.Join(dst, OutputName(src))

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !env.Cfg.Output.Overwrite {
		// skip the conversion early, O_EXCL below settles races between
		// inputs with the same output name
		if _, err := os.Stat(out); err == nil {
			return "", fmt.Errorf("destination already exists: %s", out)
		}
		flags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}

	conv := docunit.Open(src).WithLogger(log)
	if env.Cfg.Images.ConvertLegacy {
		conv = conv.ConvertLegacyImages()
	}
	doc, warnings, err := conv.Document()
	if err != nil {
		return "", err
	}
	for _, w := range warnings {
		log.Warn("Conversion warning", zap.String("file", src), zap.String("location", w.Location), zap.String("problem", w.Message))
	}

	body := doc.HTML()
	if env.Cfg.Output.Standalone {
		body = Standalone(doc, documentTitle(doc.Metadata, src), env.Stylesheet)
	}

	f, err := os.OpenFile(out, flags, 0644)
	if err != nil {
		return "", fmt.Errorf("unable to create destination file: %w", err)
	}
	if _, err := f.WriteString(body); err != nil {
		return "", multierr.Append(fmt.Errorf("unable to write destination file: %w", err), f.Close())
	}
	return out, f.Close()
}

// OutputName returns the HTML file name for a source document.
func OutputName(src string) string {
	base := filepath.Base(src)
	name := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "document"
	}
	return name + ".html"
}

func documentTitle(meta model.Metadata, src string) string {
	if t := strings.TrimSpace(meta.Title); t != "" {
		return t
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Standalone wraps the rendered document in a complete HTML page.
func Standalone(doc *model.Document, title string, stylesheet []byte) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	if doc.Metadata.Author != "" {
		sb.WriteString("<meta name=\"author\" content=\"" + html.EscapeString(doc.Metadata.Author) + "\">\n")
	}
	if len(doc.Metadata.Keywords) > 0 {
		sb.WriteString("<meta name=\"keywords\" content=\"" + html.EscapeString(strings.Join(doc.Metadata.Keywords, ", ")) + "\">\n")
	}
	if len(stylesheet) > 0 {
		sb.WriteString("<style>\n")
		sb.Write(stylesheet)
		sb.WriteString("\n</style>\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(doc.HTML())
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// DumpConfig is the action of the dumpconfig subcommand.
func DumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		which string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		which = "default"
		data, err = config.Prepare()
	} else {
		which = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", which), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
