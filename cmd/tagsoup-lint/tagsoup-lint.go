package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/internal/cliutil"
)

type cmdopts struct {
	Encoding string `long:"encoding" description:"character encoding of the input"`
	Island   string `long:"island" description:"print elements with this name as XML"`
	XPath    string `long:"xpath" description:"evaluate an XPath expression over each island"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("tagsoup-lint: using tagsoup version %s\n", tagsoup.Version)
}

func showUsage() {
	fmt.Printf(`Usage : tagsoup-lint [options] HTMLfiles ...
	Read the HTML files and print the nodes found in them
	--encoding NAME : character encoding of the input
	--island NAME : print every element called NAME as XML
	--xpath EXPR : with --island, print the nodes EXPR selects in each island
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	if opts.XPath != "" && opts.Island == "" {
		fmt.Fprintf(os.Stderr, "--xpath requires --island\n")
		return 1
	}

	var inputs []string
	switch {
	case len(args) > 0:
		inputs = args
	case !cliutil.IsTty(os.Stdin.Fd()):
		inputs = []string{"-"}
	default:
		showUsage()
		return 1
	}

	var options []tagsoup.ReaderOption
	if opts.Encoding != "" {
		options = append(options, tagsoup.WithEncoding(opts.Encoding))
	}

	ctx := context.Background()
	for _, name := range inputs {
		if err := lint(ctx, os.Stdout, name, &opts, options); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			return 1
		}
	}
	return 0
}

// open returns a seekable reader for name. Standard input is buffered in
// memory since it can not seek.
func open(name string) (io.ReadSeeker, error) {
	if name == "-" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(buf), nil
	}
	return os.Open(name)
}

func lint(ctx context.Context, out io.Writer, name string, opts *cmdopts, options []tagsoup.ReaderOption) error {
	src, err := open(name)
	if err != nil {
		return err
	}

	r, err := tagsoup.NewReader(ctx, src, options...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	if opts.Island == "" {
		d := tagsoup.Dumper{}
		return d.Dump(out, r)
	}
	return printIslands(out, r, opts.Island, opts.XPath)
}

func printIslands(out io.Writer, r *tagsoup.Reader, island, expr string) error {
	for {
		ok, err := r.Read()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		typ, err := r.NodeType()
		if err != nil {
			return err
		}
		if typ != tagsoup.ElementNode {
			continue
		}
		name, err := r.Name()
		if err != nil {
			return err
		}
		if !strings.EqualFold(name, island) {
			continue
		}

		fr, err := r.GetOuterXML()
		if err != nil {
			return err
		}
		if err := printIsland(out, fr, expr); err != nil {
			return err
		}
	}
}

func printIsland(out io.Writer, fr *tagsoup.FragmentReader, expr string) error {
	defer func() { _ = fr.Close() }()

	if expr == "" {
		_, err := fmt.Fprintf(out, "%s\n", fr.Bytes())
		return err
	}

	nodes, err := fr.Query(expr)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if _, err := fmt.Fprintln(out, n.OutputXML(true)); err != nil {
			return err
		}
	}
	return nil
}
