package run

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/docunit/config"
	"github.com/tsawler/docunit/internal/state"
	"github.com/tsawler/docunit/model"
)

// writeDOCX writes a minimal DOCX with the given body and title.
func writeDOCX(t *testing.T, dir, name, body, title string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := map[string]string{
		"[Content_Types].xml": `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
	}
	if title != "" {
		parts["docProps/core.xml"] = `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>` +
			title + `</dc:title></cp:coreProperties>`
	}
	for n, content := range parts {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatalf("failed to create %s: %v", n, err)
		}
		w.Write([]byte(content))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return path
}

func testContext(t *testing.T) (context.Context, *state.LocalEnv, *observer.ObservedLogs) {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg

	core, logs := observer.New(zap.DebugLevel)
	env.Log = zap.New(core)
	return ctx, env, logs
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:           "convert",
		Action:         Convert,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output"},
			&cli.BoolFlag{Name: "standalone"},
			&cli.BoolFlag{Name: "overwrite"},
		},
	}
}

// ============================================================================
// Output naming
// ============================================================================

func TestOutputName(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"decision.docx", "decision.html"},
		{"/data/BGH Urteil 2023.docx", "bgh-urteil-2023.html"},
		{"Entscheidung über Kosten.docx", "entscheidung-uber-kosten.html"},
		{"???.docx", "document.html"},
		{"noext", "noext.html"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := OutputName(tt.src); got != tt.want {
				t.Errorf("OutputName(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	if got := documentTitle(model.Metadata{Title: " Urteil "}, "a.docx"); got != "Urteil" {
		t.Errorf("documentTitle() = %q, want metadata title", got)
	}
	if got := documentTitle(model.Metadata{}, "/x/case-12.docx"); got != "case-12" {
		t.Errorf("documentTitle() = %q, want file name", got)
	}
}

func TestStandalone(t *testing.T) {
	doc := model.NewDocument()
	doc.Metadata.Author = "Court"
	doc.Metadata.Keywords = []string{"appeal", "costs"}
	doc.AddElement(&model.Paragraph{Runs: []model.RunElement{&model.TextRun{Text: "Body"}}})

	page := Standalone(doc, "A & B", []byte("p { margin: 0; }"))

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>A &amp; B</title>",
		`<meta name="author" content="Court">`,
		`<meta name="keywords" content="appeal, costs">`,
		"<style>\np { margin: 0; }\n</style>",
		"<body>\n<p>Body</p>\n</body>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Standalone() missing %q in:\n%s", want, page)
		}
	}

	if strings.Contains(Standalone(model.NewDocument(), "t", nil), "<style>") {
		t.Error("no style element expected without a stylesheet")
	}
}

// ============================================================================
// Convert command
// ============================================================================

func TestConvert(t *testing.T) {
	ctx, env, logs := testContext(t)
	src := t.TempDir()
	out := t.TempDir()

	a := writeDOCX(t, src, "First Case.docx", `<w:p><w:r><w:t>One</w:t></w:r></w:p><w:sdt/>`, "")
	b := writeDOCX(t, src, "second.docx", `<w:p><w:r><w:t>Two</w:t></w:r></w:p>`, "")

	if err := convertCommand().Run(ctx, []string{"convert", "--output", out, a, b}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if env.Cfg.Output.Directory != out {
		t.Errorf("--output should override configuration, got %q", env.Cfg.Output.Directory)
	}

	data, err := os.ReadFile(filepath.Join(out, "first-case.html"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if !strings.Contains(string(data), "<p>One</p>") {
		t.Errorf("unexpected output %q", data)
	}
	if _, err := os.Stat(filepath.Join(out, "second.html")); err != nil {
		t.Errorf("missing second output: %v", err)
	}

	warned := logs.FilterMessage("Conversion warning").All()
	if len(warned) != 1 {
		t.Fatalf("expected one warning for w:sdt, got %d", len(warned))
	}
	if got := warned[0].ContextMap()["location"]; got != "body[1]" {
		t.Errorf("warning location = %v, want body[1]", got)
	}
}

func TestConvert_Standalone(t *testing.T) {
	ctx, _, _ := testContext(t)
	out := t.TempDir()
	src := writeDOCX(t, t.TempDir(), "case.docx", `<w:p><w:r><w:t>Text</w:t></w:r></w:p>`, "Judgment of the Court")

	if err := convertCommand().Run(ctx, []string{"convert", "--standalone", "--output", out, src}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "case.html"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if !strings.Contains(string(data), "<title>Judgment of the Court</title>") {
		t.Errorf("expected document title in page, got %q", data)
	}
}

func TestConvert_Overwrite(t *testing.T) {
	ctx, _, _ := testContext(t)
	out := t.TempDir()
	src := writeDOCX(t, t.TempDir(), "case.docx", `<w:p><w:r><w:t>New</w:t></w:r></w:p>`, "")
	existing := filepath.Join(out, "case.html")
	os.WriteFile(existing, []byte("old"), 0644)

	err := convertCommand().Run(ctx, []string{"convert", "--output", out, src})
	if err == nil {
		t.Fatal("expected error for existing destination")
	}
	if data, _ := os.ReadFile(existing); string(data) != "old" {
		t.Errorf("existing file should be untouched, got %q", data)
	}

	if err := convertCommand().Run(ctx, []string{"convert", "--overwrite", "--output", out, src}); err != nil {
		t.Fatalf("Convert() with --overwrite error = %v", err)
	}
	if data, _ := os.ReadFile(existing); !strings.Contains(string(data), "<p>New</p>") {
		t.Errorf("expected overwritten file, got %q", data)
	}
}

func TestConvert_FailuresAggregated(t *testing.T) {
	ctx, env, logs := testContext(t)
	env.Cfg.Workers = 1
	out := t.TempDir()
	dir := t.TempDir()

	good := writeDOCX(t, dir, "good.docx", `<w:p><w:r><w:t>Fine</w:t></w:r></w:p>`, "")
	malformed := writeDOCX(t, dir, "bad.docx", `<w:p><w:r><w:drawing/></w:r></w:p>`, "")
	missing := filepath.Join(dir, "missing.docx")

	err := convertCommand().Run(ctx, []string{"convert", "--output", out, malformed, good, missing})
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	if errs := multierr.Errors(err); len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), err)
	}
	if !strings.Contains(err.Error(), "bad.docx") || !strings.Contains(err.Error(), "missing.docx") {
		t.Errorf("errors should name the files, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "good.html")); err != nil {
		t.Errorf("good file should still be converted: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "bad.html")); err == nil {
		t.Error("no output expected for a failed conversion")
	}
	if n := logs.FilterMessage("Unable to convert file").Len(); n != 2 {
		t.Errorf("expected 2 logged failures, got %d", n)
	}
}

func TestConvert_SameOutputName(t *testing.T) {
	ctx, env, _ := testContext(t)
	env.Cfg.Workers = 2
	out := t.TempDir()

	a := writeDOCX(t, t.TempDir(), "Case A.docx", `<w:p><w:r><w:t>first</w:t></w:r></w:p>`, "")
	b := writeDOCX(t, t.TempDir(), "case-a.docx", `<w:p><w:r><w:t>second</w:t></w:r></w:p>`, "")

	err := convertCommand().Run(ctx, []string{"convert", "--output", out, a, b})
	if errs := multierr.Errors(err); len(errs) != 1 {
		t.Fatalf("expected exactly one conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "exists") {
		t.Errorf("expected an existing destination error, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "case-a.html"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if got := string(data); got != "<p>first</p>" && got != "<p>second</p>" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConvert_NoFiles(t *testing.T) {
	ctx, _, _ := testContext(t)
	if err := convertCommand().Run(ctx, []string{"convert"}); err == nil {
		t.Error("expected error without input files")
	}
}

func TestConvert_Cancelled(t *testing.T) {
	ctx, _, _ := testContext(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if err := Convert(ctx, convertCommand()); err == nil {
		t.Error("expected error for cancelled context")
	}
}

// ============================================================================
// Dumpconfig command
// ============================================================================

func TestDumpConfig(t *testing.T) {
	ctx, env, _ := testContext(t)
	env.Cfg.Workers = 7
	dst := filepath.Join(t.TempDir(), "out.yaml")

	dumpCommand := func() *cli.Command {
		return &cli.Command{
			Name:           "dumpconfig",
			Action:         DumpConfig,
			ExitErrHandler: func(context.Context, *cli.Command, error) {},
			Flags:          []cli.Flag{&cli.BoolFlag{Name: "default"}},
		}
	}
	if err := dumpCommand().Run(ctx, []string{"dumpconfig", dst}); err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}
	data, _ := os.ReadFile(dst)
	if !strings.Contains(string(data), "workers: 7") {
		t.Errorf("expected actual configuration, got:\n%s", data)
	}

	if err := dumpCommand().Run(ctx, []string{"dumpconfig", "--default", dst}); err != nil {
		t.Fatalf("DumpConfig(--default) error = %v", err)
	}
	data, _ = os.ReadFile(dst)
	if !strings.Contains(string(data), "workers: 4") {
		t.Errorf("expected default configuration, got:\n%s", data)
	}
}
